// Package dom loads an HTML document, resolves the color properties of its elements
// from inline styles and embedded stylesheets, and writes inline styles back.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/swatchkit/swatchkit/css"
	"github.com/swatchkit/swatchkit/log"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document together with the style rules of its embedded
// stylesheets. It is not safe for concurrent use.
type Document struct {
	doc   *goquery.Document
	rules []rule
	cache map[*html.Node]*resolved
}

// rule is one selector of a stylesheet rule, compiled.
type rule struct {
	sel         cascadia.Sel
	specificity cascadia.Specificity
	order       int
	decls       []css.Declaration
}

// Parse reads an HTML document and compiles the rules of every <style> element.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	d := &Document{doc: doc}
	d.compile()
	d.invalidate()

	return d, nil
}

func (d *Document) compile() {
	var sheets []string
	d.doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		if media, ok := s.Attr("media"); ok && !screenMedia(media) {
			return
		}
		sheets = append(sheets, s.Text())
	})

	order := 0
	for _, r := range css.ParseStylesheet(strings.Join(sheets, "\n")) {
		for _, sel := range compileSelector(r.Selector) {
			if sel.PseudoElement() != "" {
				continue
			}
			d.rules = append(d.rules, rule{
				sel:         sel,
				specificity: sel.Specificity(),
				order:       order,
				decls:       r.Declarations,
			})
		}
		order++
	}

	log.Debugf("compiled %d selectors from %d stylesheets", len(d.rules), len(sheets))
}

// compileSelector parses a selector list. When the list as a whole is not understood
// its members are tried one by one and the unsupported ones dropped.
func compileSelector(selector string) []cascadia.Sel {
	group, err := cascadia.ParseGroup(selector)
	if err == nil {
		return group
	}

	var sels []cascadia.Sel
	for _, part := range strings.Split(selector, ",") {
		sel, err := cascadia.Parse(strings.TrimSpace(part))
		if err != nil {
			log.Tracef("skipping selector %q: %s", part, err)
			continue
		}
		sels = append(sels, sel)
	}
	return sels
}

func screenMedia(media string) bool {
	for _, m := range strings.Split(strings.ToLower(media), ",") {
		switch strings.Fields(m + " all")[0] {
		case "all", "screen":
			return true
		}
	}
	return false
}

// invalidate drops every resolved style. Inheritance makes any write visible to the
// whole subtree, so the cache is cleared as a whole.
func (d *Document) invalidate() {
	d.cache = make(map[*html.Node]*resolved)
}

// Root returns the root element, usually <html>.
func (d *Document) Root() Element {
	for n := d.doc.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return Element{doc: d, node: n}
		}
	}
	return Element{doc: d}
}

// Find returns the elements matching a CSS selector in document order.
func (d *Document) Find(selector string) ([]Element, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}

	nodes := d.doc.FindMatcher(matcher).Nodes
	elements := make([]Element, len(nodes))
	for i, n := range nodes {
		elements[i] = Element{doc: d, node: n}
	}
	return elements, nil
}

// Render writes the document, including every inline style written so far, as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.doc.Nodes[0])
}

// HTML renders the document to a string.
func (d *Document) HTML() (string, error) {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Remove detaches e from the document. Handles to e and its descendants report
// themselves as detached afterwards.
func (d *Document) Remove(e Element) {
	if e.node == nil || e.node.Parent == nil {
		return
	}
	d.doc.FindNodes(e.node).Remove()
	d.invalidate()
}

func (d *Document) attached(n *html.Node) bool {
	root := d.doc.Nodes[0]
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}
