// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/swatchkit/swatchkit/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a stateless rendering function that applies the specified background color to a string.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Tag returns a rendering function that encapsulates a string in a colored, padded tag block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Ink picks a readable label color for text drawn on top of the given hex code.
// Codes that do not parse get the light ink.
func Ink(code string) lipgloss.Color {
	c, err := colorful.Hex("#" + code)
	if err != nil {
		return InkLight
	}

	l, _, _ := c.Lab()
	if l > 0.6 {
		return InkDark
	}
	return InkLight
}

// Chip renders a solid block of the given hex code, width cells wide.
func Chip(code string, width int) string {
	if width < 1 {
		width = 1
	}
	return Bg(color.Hex(code))(strings.Repeat(" ", width))
}

// Label renders the hex code itself on its own color.
func Label(code string) string {
	return Tag(Ink(code), color.Hex(code))(code)
}
