// Package css models the slice of CSS that carries color: the color-bearing properties,
// declared color values, declaration blocks and stylesheets.
package css

import "fmt"

// Property is one of the color-bearing style properties.
type Property int

const (
	BackgroundColor Property = iota
	Color
	BorderTopColor
	BorderRightColor
	BorderBottomColor
	BorderLeftColor
	OutlineColor
)

// Properties lists every color-bearing property in sampling order.
var Properties = []Property{
	BackgroundColor,
	Color,
	BorderTopColor,
	BorderRightColor,
	BorderBottomColor,
	BorderLeftColor,
	OutlineColor,
}

var propertyNames = [...]string{
	BackgroundColor:   "background-color",
	Color:             "color",
	BorderTopColor:    "border-top-color",
	BorderRightColor:  "border-right-color",
	BorderBottomColor: "border-bottom-color",
	BorderLeftColor:   "border-left-color",
	OutlineColor:      "outline-color",
}

// borderSides are the border longhands in box order: top, right, bottom, left.
var borderSides = []Property{BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor}

// String returns the CSS property name, e.g. "border-top-color".
func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

// Inherited reports whether the property inherits from the parent element by default.
func (p Property) Inherited() bool {
	return p == Color
}

// PropertyByName looks up a property by its CSS name.
func PropertyByName(name string) (Property, bool) {
	for p, n := range propertyNames {
		if n == name {
			return Property(p), true
		}
	}
	return 0, false
}

// MarshalText encodes the property as its CSS name.
func (p Property) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a CSS property name.
func (p *Property) UnmarshalText(text []byte) error {
	parsed, ok := PropertyByName(string(text))
	if !ok {
		return fmt.Errorf("unknown color property %q", text)
	}
	*p = parsed
	return nil
}

// Computed holds the resolved value of every color property of one element, in the
// textual form a browser reports, e.g. "rgb(255, 136, 0)".
type Computed map[Property]string
