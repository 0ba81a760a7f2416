package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/swatchkit/swatchkit/css"
	"golang.org/x/net/html"
)

// hiddenTags never render and have no resolvable style, nor do their descendants.
var hiddenTags = map[string]struct{}{
	"head":     {},
	"title":    {},
	"meta":     {},
	"link":     {},
	"style":    {},
	"script":   {},
	"base":     {},
	"template": {},
	"noscript": {},
}

type resolved struct {
	rendered  bool
	colors    map[css.Property]css.RGBA
	important map[css.Property]bool
}

func (r *resolved) computed() css.Computed {
	computed := make(css.Computed, len(r.colors))
	for p, c := range r.colors {
		computed[p] = c.Resolved()
	}
	return computed
}

// candidate is a declaration competing in the cascade for one property.
type candidate struct {
	decl        css.Declaration
	inline      bool
	specificity cascadia.Specificity
	order       int
	index       int
}

// beats ranks importance first, then inline over stylesheet, specificity, rule order
// and finally position inside the block.
func (c candidate) beats(o candidate) bool {
	switch {
	case c.decl.Important != o.decl.Important:
		return c.decl.Important
	case c.inline != o.inline:
		return c.inline
	case c.specificity != o.specificity:
		return o.specificity.Less(c.specificity)
	case c.order != o.order:
		return c.order > o.order
	default:
		return c.index > o.index
	}
}

func (d *Document) resolve(n *html.Node) *resolved {
	if r, ok := d.cache[n]; ok {
		return r
	}

	var parent *resolved
	if n.Parent != nil && n.Parent.Type == html.ElementNode {
		parent = d.resolve(n.Parent)
	}

	_, hidden := hiddenTags[n.Data]
	r := &resolved{
		rendered:  !hidden && (parent == nil || parent.rendered),
		colors:    make(map[css.Property]css.RGBA, len(css.Properties)),
		important: make(map[css.Property]bool),
	}

	winners := d.cascade(n)
	for p, w := range winners {
		r.important[p] = w.decl.Important
	}

	inherited := func(p css.Property) (css.RGBA, bool) {
		if parent == nil {
			return css.RGBA{}, false
		}
		return parent.colors[p], true
	}

	color, ok := inherited(css.Color)
	if !ok {
		color = css.Black
	}
	if w, ok := winners[css.Color]; ok {
		switch w.decl.Value.Keyword {
		case css.Literal:
			color = w.decl.Value.Color
		case css.Initial:
			color = css.Black
		}
	}
	r.colors[css.Color] = color

	for _, p := range css.Properties {
		if p == css.Color {
			continue
		}

		value := initial(p, color)
		if w, ok := winners[p]; ok {
			switch w.decl.Value.Keyword {
			case css.Literal:
				value = w.decl.Value.Color
			case css.CurrentColor:
				value = color
			case css.Inherit:
				if c, ok := inherited(p); ok {
					value = c
				}
			}
		}
		r.colors[p] = value
	}

	d.cache[n] = r
	return r
}

// cascade picks the winning declaration of every property set on n.
func (d *Document) cascade(n *html.Node) map[css.Property]candidate {
	winners := make(map[css.Property]candidate)
	offer := func(c candidate) {
		if w, ok := winners[c.decl.Property]; !ok || c.beats(w) {
			winners[c.decl.Property] = c
		}
	}

	for _, r := range d.rules {
		if !r.sel.Match(n) {
			continue
		}
		for i, decl := range r.decls {
			offer(candidate{decl: decl, specificity: r.specificity, order: r.order, index: i})
		}
	}

	for i, decl := range css.ParseDeclarations(attr(n, "style")) {
		offer(candidate{decl: decl, inline: true, index: i})
	}

	return winners
}

func initial(p css.Property, color css.RGBA) css.RGBA {
	if p == css.BackgroundColor {
		return css.Transparent
	}
	return color
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
