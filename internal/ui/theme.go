package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending, Frame lipgloss.TerminalColor

	// Tool badge colours, one per recognised server tool plus a fallback.
	ToolCreate, ToolList, ToolNote, ToolUser, ToolOther lipgloss.TerminalColor

	Border         lipgloss.Border
	SymOK, SymFail string
	Bullet         string
}

var current = classic()

// SetTheme switches the palette used by every style helper. Unknown names
// fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: lipgloss.Color("201"), Muted: lipgloss.Color("244"), Accent: lipgloss.Color("51"),
			Success: lipgloss.Color("46"), Error: lipgloss.Color("196"), Pending: lipgloss.Color("226"),
			Frame:      lipgloss.Color("93"),
			ToolCreate: lipgloss.Color("46"), ToolList: lipgloss.Color("45"), ToolNote: lipgloss.Color("226"),
			ToolUser: lipgloss.Color("207"), ToolOther: lipgloss.Color("250"),
			Border: lipgloss.RoundedBorder(),
			SymOK:  "✔", SymFail: "✖", Bullet: "◆",
		}
	case "mono":
		none := lipgloss.NoColor{}
		current = Theme{
			Name:  "mono",
			Title: none, Muted: none, Accent: none, Success: none, Error: none, Pending: none, Frame: none,
			ToolCreate: none, ToolList: none, ToolNote: none, ToolUser: none, ToolOther: none,
			Border: lipgloss.ASCIIBorder(),
			SymOK:  "ok", SymFail: "x", Bullet: "-",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:  "classic",
		Title: lipgloss.Color("63"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
		Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
		Frame:      lipgloss.Color("8"),
		ToolCreate: lipgloss.Color("34"), ToolList: lipgloss.Color("33"), ToolNote: lipgloss.Color("178"),
		ToolUser: lipgloss.Color("135"), ToolOther: lipgloss.Color("245"),
		Border: lipgloss.RoundedBorder(),
		SymOK:  "✔", SymFail: "✖", Bullet: "•",
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
