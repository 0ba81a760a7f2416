package swatch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/swatchkit/swatchkit/util"
)

// Code is a canonical RGB color: six lowercase hex digits without a leading marker.
type Code string

// CodeOf builds a Code from 8-bit channels.
func CodeOf(r, g, b uint8) Code {
	return Code(fmt.Sprintf("%02x%02x%02x", r, g, b))
}

// CSS renders the code the way inline styles expect it, e.g. "#ff8800".
func (c Code) CSS() string {
	return "#" + string(c)
}

func (c Code) String() string {
	return string(c)
}

var hexDigits = regexp.MustCompile(`^[0-9a-f]+$`)

// ParseCode normalizes a user-supplied hex color. A leading '#', upper case and the
// three-digit shorthand are accepted.
func ParseCode(s string) (Code, error) {
	digits := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if !hexDigits.MatchString(digits) {
		return "", fmt.Errorf("invalid color code %q", s)
	}

	switch len(digits) {
	case 3:
		return Code(string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})), nil
	case 6:
		return Code(digits), nil
	default:
		return "", fmt.Errorf("invalid color code %q: want 3 or 6 hex digits", s)
	}
}

var (
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(?P<r>\d{1,3})\s*,\s*(?P<g>\d{1,3})\s*,\s*(?P<b>\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(?P<r>\d{1,3})\s*,\s*(?P<g>\d{1,3})\s*,\s*(?P<b>\d{1,3})\s*,\s*(?P<a>\d*\.?\d+)\s*\)$`)
)

// ParseResolved converts a resolved style value to a Code. Only "rgb(r, g, b)" and
// "rgba(r, g, b, a)" are understood; fully transparent colors and anything that does
// not parse yield None.
func ParseResolved(value string) mo.Option[Code] {
	value = strings.TrimSpace(value)

	groups := util.ReGroups(rgbPattern, value)
	if len(groups) == 0 {
		groups = util.ReGroups(rgbaPattern, value)
		if len(groups) == 0 {
			return mo.None[Code]()
		}

		alpha, err := strconv.ParseFloat(groups["a"], 64)
		if err != nil || alpha > 1 || alpha == 0 {
			return mo.None[Code]()
		}
	}

	var channels [3]uint8
	for i, name := range []string{"r", "g", "b"} {
		v, err := strconv.ParseUint(groups[name], 10, 8)
		if err != nil {
			return mo.None[Code]()
		}
		channels[i] = uint8(v)
	}

	return mo.Some(CodeOf(channels[0], channels[1], channels[2]))
}
