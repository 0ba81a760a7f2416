package style

import "github.com/charmbracelet/lipgloss"

// Ink colors used for chip labels; picked per swatch by lightness.
var (
	InkDark  = lipgloss.Color("#1e1e2e")
	InkLight = lipgloss.Color("#cdd6f4")
)

// AccentColor highlights headings.
var AccentColor = lipgloss.Color("#cba6f7")
