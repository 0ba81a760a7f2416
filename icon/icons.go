package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Swatch
	Arrow
	Link
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✗",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		squares: "🟨",
	},
	Swatch: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "■",
		squares: "🟪",
	},
	Arrow: {
		emoji:   "➡️",
		nerd:    "",
		plain:   "->",
		squares: "▶",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		squares: "🟦",
	},
}
