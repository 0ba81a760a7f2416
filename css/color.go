package css

import (
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/swatchkit/swatchkit/util"
	"golang.org/x/image/colornames"
)

// RGBA is a concrete color with 8-bit channels and a fractional alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
)

// Resolved formats the color the way computed styles report it:
// "rgb(r, g, b)" when opaque, "rgba(r, g, b, a)" otherwise.
func (c RGBA) Resolved() string {
	if c.A >= 1 {
		return "rgb(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " + strconv.Itoa(int(c.B)) + ")"
	}
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " + strconv.Itoa(int(c.B)) + ", " +
		strconv.FormatFloat(c.A, 'f', -1, 64) + ")"
}

// Keyword classifies a declared color value.
type Keyword int

const (
	// Literal is a concrete color.
	Literal Keyword = iota
	CurrentColor
	Inherit
	Initial
	Unset
)

// Value is a declared color value: either a literal color or a CSS-wide keyword.
type Value struct {
	Keyword Keyword
	Color   RGBA
}

// LiteralValue wraps a concrete color.
func LiteralValue(c RGBA) Value {
	return Value{Keyword: Literal, Color: c}
}

// ParseValue parses a declared color value. It accepts hex notation (#rgb, #rgba,
// #rrggbb, #rrggbbaa), named colors, transparent, currentcolor, rgb()/rgba(),
// hsl()/hsla() and the inherit/initial/unset keywords.
func ParseValue(s string) (Value, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return Value{}, false
	case "currentcolor":
		return Value{Keyword: CurrentColor}, true
	case "inherit":
		return Value{Keyword: Inherit}, true
	case "initial":
		return Value{Keyword: Initial}, true
	case "unset":
		return Value{Keyword: Unset}, true
	}

	c, ok := ParseColor(s)
	if !ok {
		return Value{}, false
	}
	return LiteralValue(c), true
}

// ParseColor parses a literal color. Keywords other than transparent are rejected.
func ParseColor(s string) (RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case s == "transparent":
		return Transparent, true
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSLFunc(s)
	}

	if named, ok := colornames.Map[s]; ok {
		return RGBA{R: named.R, G: named.G, B: named.B, A: 1}, true
	}
	return RGBA{}, false
}

func parseHex(s string) (RGBA, bool) {
	digits := s[1:]
	alpha := 1.0

	switch len(digits) {
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		alpha = roundAlpha(float64(a) / 255)
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		alpha = roundAlpha(float64(a) / 255)
		digits = digits[:6]
	}

	if (len(digits) != 3 && len(digits) != 6) || strings.Trim(digits, "0123456789abcdef") != "" {
		return RGBA{}, false
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGBA{}, false
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}, true
}

// functionArgs splits "name(a, b, c)" or "name(a b c / d)" into its arguments.
func functionArgs(s string) ([]string, bool) {
	open := strings.IndexByte(s, '(')
	if open == -1 || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := s[open+1 : len(s)-1]
	inner = strings.ReplaceAll(inner, "/", " ")
	inner = strings.ReplaceAll(inner, ",", " ")
	return strings.Fields(inner), true
}

func parseRGBFunc(s string) (RGBA, bool) {
	if !strings.HasPrefix(s, "rgb(") && !strings.HasPrefix(s, "rgba(") {
		return RGBA{}, false
	}
	args, ok := functionArgs(s)
	if !ok || (len(args) != 3 && len(args) != 4) {
		return RGBA{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := parseChannel(args[i])
		if !ok {
			return RGBA{}, false
		}
		channels[i] = v
	}

	alpha := 1.0
	if len(args) == 4 {
		if alpha, ok = parseAlpha(args[3]); !ok {
			return RGBA{}, false
		}
	}
	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, true
}

func parseHSLFunc(s string) (RGBA, bool) {
	if !strings.HasPrefix(s, "hsl(") && !strings.HasPrefix(s, "hsla(") {
		return RGBA{}, false
	}
	args, ok := functionArgs(s)
	if !ok || (len(args) != 3 && len(args) != 4) {
		return RGBA{}, false
	}

	hue, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return RGBA{}, false
	}
	sat, ok := parsePercent(args[1])
	if !ok {
		return RGBA{}, false
	}
	light, ok := parsePercent(args[2])
	if !ok {
		return RGBA{}, false
	}

	alpha := 1.0
	if len(args) == 4 {
		if alpha, ok = parseAlpha(args[3]); !ok {
			return RGBA{}, false
		}
	}

	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(hue, sat, light).Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}, true
}

func parseChannel(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		p, ok := parsePercent(s)
		if !ok {
			return 0, false
		}
		return uint8(math.Round(p * 255)), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return uint8(math.Round(clamp01(v/255) * 255)), true
}

func parseAlpha(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		p, ok := parsePercent(s)
		return roundAlpha(p), ok
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return roundAlpha(clamp01(v)), true
}

func parsePercent(s string) (float64, bool) {
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return clamp01(v / 100), true
}

func clamp01(v float64) float64 {
	return util.Clamp(v, 0, 1)
}

// roundAlpha keeps alpha to the precision browsers report.
func roundAlpha(a float64) float64 {
	return math.Round(a*1000) / 1000
}
