package swatch

import "github.com/swatchkit/swatchkit/css"

// PropertyColors holds the sampled color of each property that had one.
type PropertyColors map[css.Property]Code

// Sample reads the resolved style of el and normalizes every color property to a Code.
// Properties without a value, fully transparent ones and values that do not parse are
// left out. An element without resolvable style yields an empty result.
func Sample(el Element) PropertyColors {
	colors := make(PropertyColors)

	style, ok := el.ComputedStyle()
	if !ok {
		return colors
	}

	for _, p := range css.Properties {
		value, ok := style[p]
		if !ok || value == "" {
			continue
		}
		if code, ok := ParseResolved(value).Get(); ok {
			colors[p] = code
		}
	}

	return colors
}
