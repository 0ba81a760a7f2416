package dom

import (
	"slices"
	"strconv"
	"strings"

	"github.com/swatchkit/swatchkit/css"
	"github.com/swatchkit/swatchkit/swatch"
	"golang.org/x/net/html"
)

// Element is a handle onto an element node of a Document. Handles are comparable and
// stay valid after the element is removed; they then report it as detached.
type Element struct {
	doc  *Document
	node *html.Node
}

var _ swatch.Element = Element{}

// Children returns the element children in document order.
func (e Element) Children() []swatch.Element {
	if e.node == nil {
		return nil
	}

	var children []swatch.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, Element{doc: e.doc, node: c})
		}
	}
	return children
}

// ComputedStyle resolves the color properties of the element. Detached elements and
// elements that are never rendered have no style.
func (e Element) ComputedStyle() (css.Computed, bool) {
	if !e.Attached() {
		return nil, false
	}

	r := e.doc.resolve(e.node)
	if !r.rendered {
		return nil, false
	}
	return r.computed(), true
}

// SetStyle writes value as an inline declaration of p. The declaration is marked
// important when the value it replaces was, so that it still wins the cascade.
func (e Element) SetStyle(p css.Property, value string) {
	if !e.Attached() {
		return
	}

	important := e.doc.resolve(e.node).important[p]

	raws := css.SetDeclaration(css.SplitDeclarations(e.Style()), p.String(), value)
	raws[len(raws)-1].Important = important

	e.doc.doc.FindNodes(e.node).SetAttr("style", css.FormatDeclarations(raws))
	e.doc.invalidate()
}

// Attached reports whether the element is still part of its document.
func (e Element) Attached() bool {
	return e.node != nil && e.doc.attached(e.node)
}

// Tag returns the lowercase tag name.
func (e Element) Tag() string {
	if e.node == nil {
		return ""
	}
	return e.node.Data
}

// Style returns the raw inline style attribute.
func (e Element) Style() string {
	if e.node == nil {
		return ""
	}
	return attr(e.node, "style")
}

// Path describes where the element sits, e.g. "html > body > div:nth-of-type(2) > p".
// An element with an id anchors the path.
func (e Element) Path() string {
	var parts []string
	for n := e.node; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if id := attr(n, "id"); id != "" {
			parts = append(parts, n.Data+"#"+id)
			break
		}
		parts = append(parts, n.Data+nthOfType(n))
	}

	slices.Reverse(parts)
	return strings.Join(parts, " > ")
}

func nthOfType(n *html.Node) string {
	if n.Parent == nil {
		return ""
	}

	index, total := 0, 0
	for s := n.Parent.FirstChild; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode || s.Data != n.Data {
			continue
		}
		total++
		if s == n {
			index = total
		}
	}

	if total < 2 {
		return ""
	}
	return ":nth-of-type(" + strconv.Itoa(index) + ")"
}
