package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/aitodo/internal/model"
)

// ToolGlyph maps a server tool to its display glyph.
func ToolGlyph(t model.Tool) string {
	switch t {
	case model.ToolCreateTodo:
		return "✅"
	case model.ToolListTodos:
		return "📋"
	case model.ToolCreateNote:
		return "📝"
	case model.ToolGetUserInfo:
		return "👤"
	default:
		return "🤖"
	}
}

// ToolStyle maps a server tool to its badge style.
func ToolStyle(t model.Tool) lipgloss.Style {
	var c lipgloss.TerminalColor
	switch t {
	case model.ToolCreateTodo:
		c = current.ToolCreate
	case model.ToolListTodos:
		c = current.ToolList
	case model.ToolCreateNote:
		c = current.ToolNote
	case model.ToolGetUserInfo:
		c = current.ToolUser
	default:
		c = current.ToolOther
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// ToolBadge renders "<glyph> <tool name>" for a response, or "" when the
// server reported no tool. Unknown tools keep the raw name the server sent.
func ToolBadge(r model.AIResponse) string {
	t := r.Tool()
	if t == model.ToolNone {
		return ""
	}
	name := strings.ReplaceAll(strings.TrimSpace(r.ToolUsed), "_", " ")
	return ToolStyle(t).Render(ToolGlyph(t) + " " + name)
}
