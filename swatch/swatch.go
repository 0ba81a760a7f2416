// Package swatch extracts the palette of colors in use from a document tree and
// writes remapped colors back onto it.
//
// A palette is built in three steps: Walk samples every element and accumulates a
// ColorMap, Build turns the map into a Set of unique swatches, and Repaint writes each
// swatch's color back to every (element, property) pair that uses it.
package swatch

import (
	"github.com/samber/lo"
	"github.com/swatchkit/swatchkit/css"
)

// Element is a non-owning handle onto an element of a live document.
// Implementations must be comparable; two handles to the same element must be equal.
type Element interface {
	// Children returns the element children in document order.
	Children() []Element

	// ComputedStyle returns the resolved color properties, or false when the element
	// has no resolvable style (for instance it is not rendered).
	ComputedStyle() (css.Computed, bool)

	// SetStyle writes an inline style value for a property.
	SetStyle(p css.Property, value string)

	// Attached reports whether the element is still part of its document.
	Attached() bool
}

// Usage is one (element, property) pair displaying a swatch's color.
type Usage struct {
	Element  Element
	Property css.Property
}

// Swatch is a unique color and every usage currently displaying it.
type Swatch struct {
	Color Code
	Users []Usage
}

// Set is the palette known for a document.
type Set []*Swatch

// Colors returns the distinct swatch colors in swatch order.
func (s Set) Colors() []Code {
	return lo.Uniq(lo.Map(s, func(sw *Swatch, _ int) Code {
		return sw.Color
	}))
}

// Usages returns the total number of usages across all swatches.
func (s Set) Usages() int {
	return lo.SumBy(s, func(sw *Swatch) int {
		return len(sw.Users)
	})
}

// Find returns the first swatch with the given color.
func (s Set) Find(c Code) (*Swatch, bool) {
	return lo.Find(s, func(sw *Swatch) bool {
		return sw.Color == c
	})
}

// Apply recolors every swatch whose current color is a key of t and returns how many
// swatches changed. Lookups use the color each swatch had before the call, so a table
// that swaps two colors swaps them.
func (s Set) Apply(t RemapTable) int {
	changed := 0
	for _, sw := range s {
		if to, ok := t[sw.Color]; ok {
			if to != sw.Color {
				changed++
			}
			sw.Color = to
		}
	}
	return changed
}

// Prune drops usages whose element is no longer attached to its document and returns
// how many were dropped. Swatches stay in place even when they end up empty.
func (s Set) Prune() int {
	dropped := 0
	for _, sw := range s {
		kept := sw.Users[:0]
		for _, u := range sw.Users {
			if u.Element.Attached() {
				kept = append(kept, u)
			} else {
				dropped++
			}
		}
		sw.Users = kept
	}
	return dropped
}
