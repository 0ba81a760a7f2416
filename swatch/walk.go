package swatch

import (
	"github.com/swatchkit/swatchkit/css"
	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/util"
)

type frame struct {
	el       Element
	expanded bool
}

// Walk samples root and all of its descendants and returns their usages grouped by
// color. Children are folded in before their parent, depth first. Elements without
// resolvable style contribute nothing but their subtrees are still visited.
func Walk(root Element) *ColorMap {
	acc := NewColorMap()
	if root == nil {
		return acc
	}

	var (
		stack    util.Stack[frame]
		visited  = make(map[Element]struct{})
		elements int
	)

	stack.Push(frame{el: root})
	for {
		f, ok := stack.Pop()
		if !ok {
			break
		}

		if f.expanded {
			collect(acc, f.el)
			continue
		}

		if _, seen := visited[f.el]; seen {
			continue
		}
		visited[f.el] = struct{}{}
		elements++

		stack.Push(frame{el: f.el, expanded: true})
		children := f.el.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(frame{el: children[i]})
		}
	}

	log.Debugf("walked %d elements: %d colors, %d usages", elements, acc.Len(), acc.Usages())
	return acc
}

// collect adds the sample of el to acc in property order.
func collect(acc *ColorMap, el Element) {
	colors := Sample(el)
	for _, p := range css.Properties {
		if code, ok := colors[p]; ok {
			acc.Add(code, Usage{Element: el, Property: p})
		}
	}
}
