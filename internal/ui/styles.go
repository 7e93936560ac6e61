package ui

import "github.com/charmbracelet/lipgloss"

// Style helpers are functions so a theme switch applies everywhere.

func TitleStyle() lipgloss.Style   { return lipgloss.NewStyle().Bold(true).Foreground(current.Title) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Faint(true).Foreground(current.Muted) }
func AccentStyle() lipgloss.Style  { return lipgloss.NewStyle().Foreground(current.Accent) }
func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Success) }
func PendingStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Pending) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(current.Error).Bold(true) }
func HelpStyle() lipgloss.Style    { return lipgloss.NewStyle().Faint(true) }

func SelectedStyle() lipgloss.Style { return lipgloss.NewStyle().Bold(true).Reverse(true) }

// ActiveTabStyle and TabStyle render the tab strip.
func ActiveTabStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(current.Accent).Underline(true).Padding(0, 2)
}

func TabStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true).Padding(0, 2)
}

// FrameStyle is the bordered box used for panels and dialogs.
func FrameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.Frame).
		Padding(0, 1)
}
