package swatch

import (
	"github.com/swatchkit/swatchkit/css"
)

// node is an in-memory element whose style writes update what it reports.
type node struct {
	name     string
	style    css.Computed
	hidden   bool
	detached bool
	children []*node
	writes   int
}

func el(name string, style css.Computed, children ...*node) *node {
	if style == nil {
		style = css.Computed{}
	}
	return &node{name: name, style: style, children: children}
}

func (n *node) Children() []Element {
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) ComputedStyle() (css.Computed, bool) {
	if n.hidden {
		return nil, false
	}
	return n.style, true
}

func (n *node) SetStyle(p css.Property, value string) {
	n.writes++
	if c, ok := css.ParseColor(value); ok {
		n.style[p] = c.Resolved()
		return
	}
	n.style[p] = value
}

func (n *node) Attached() bool {
	return !n.detached
}

func rgb(r, g, b int) string {
	return css.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 1}.Resolved()
}
