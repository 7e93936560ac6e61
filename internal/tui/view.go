package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/aitodo/internal/model"
	"github.com/idilsaglam/aitodo/internal/ui"
)

const emptyText = "No todos yet. Create your first todo using Manual or AI tabs!"

func (m Model) View() string {
	// Dialogs are modal: nothing else is drawn until they are answered.
	if m.ack != nil {
		title := "✔ Done"
		if m.ack.isError {
			title = "✖ Error"
		}
		return m.place(ui.Dialog(title, m.ack.text, "enter: ok", m.ack.isError))
	}
	if m.confirmDelete != nil {
		body := "Are you sure you want to delete this todo?\n\n" +
			ui.AccentStyle().Render(m.confirmDelete.Text) + "\n\n" +
			ui.MutedStyle().Render("Only hidden here; the server keeps it.")
		return m.place(ui.Dialog("Delete todo", body, "y: delete • n: cancel", true))
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch m.tab {
	case model.TabManual:
		b.WriteString(m.manualView())
	case model.TabAI:
		b.WriteString(m.aiView())
	case model.TabTodos:
		b.WriteString(m.todosView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.footerView())
	return ui.Panel([]string{b.String()})
}

func (m Model) place(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) headerView() string {
	return ui.TitleStyle().Render("Smart Todo Manager with AI Tools") + "\n" +
		ui.MutedStyle().Render("Create todos manually or let AI handle it with powerful tools")
}

func (m Model) tabsView() string {
	labels := []struct {
		tab   model.Tab
		label string
	}{
		{model.TabManual, "➕ Manual Todo"},
		{model.TabAI, "🤖 AI Assistant"},
		{model.TabTodos, fmt.Sprintf("📋 All Todos (%d)", len(m.todos))},
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.tab == m.tab {
			parts = append(parts, ui.ActiveTabStyle().Render(l.label))
		} else {
			parts = append(parts, ui.TabStyle().Render(l.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) manualView() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle().Render("Create Manual Todo"))
	b.WriteString("\n\n")
	b.WriteString(m.manual.View())
	b.WriteString("\n\n")
	switch {
	case m.loadingManual:
		b.WriteString(m.spinner.View() + " Creating Todo...")
	case strings.TrimSpace(m.manual.Value()) == "":
		b.WriteString(ui.MutedStyle().Render("➕ Create Todo"))
	default:
		b.WriteString(ui.AccentStyle().Render("➕ Create Todo") + ui.HelpStyle().Render("  (enter)"))
	}
	return b.String()
}

func (m Model) aiView() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle().Render("AI Assistant"))
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle().Render("Available tools: Create Todo, List Todos, Create Note, Get User Info"))
	b.WriteString("\n\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n\n")
	switch {
	case m.loadingAI:
		b.WriteString(m.spinner.View() + " AI Processing...")
	case strings.TrimSpace(m.prompt.Value()) == "":
		b.WriteString(ui.MutedStyle().Render("🤖 Send to AI Assistant"))
	default:
		b.WriteString(ui.AccentStyle().Render("🤖 Send to AI Assistant") + ui.HelpStyle().Render("  (ctrl+s)"))
	}

	if m.aiResponse != nil {
		head := "🤖 " + ui.TitleStyle().Render("AI Response")
		if badge := ui.ToolBadge(*m.aiResponse); badge != "" {
			head += "  " + badge
		}
		out := m.aiRendered
		if out == "" {
			out = m.aiResponse.Output
		}
		b.WriteString("\n\n")
		b.WriteString(ui.Panel([]string{head, "", out}))
	}
	return b.String()
}

func (m Model) todosView() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle().Render(fmt.Sprintf("All Todos (%d)", len(m.todos))))
	if m.loadingTodos {
		b.WriteString("   " + m.spinner.View())
	} else {
		b.WriteString("   " + ui.HelpStyle().Render("🔄 Refresh (r)"))
	}
	b.WriteString("\n\n")

	switch {
	case m.loadingTodos:
		b.WriteString(m.spinner.View() + " Loading todos...")
	case len(m.todos) == 0:
		b.WriteString(ui.MutedStyle().Render(emptyText))
	default:
		b.WriteString(m.list.View())
	}
	return b.String()
}

func (m Model) footerView() string {
	if m.status != "" {
		return ui.SuccessStyle().Render(m.status)
	}
	var bindings []key.Binding
	switch m.tab {
	case model.TabManual:
		bindings = []key.Binding{m.keys.Submit, m.keys.NextTab, m.keys.ForceQuit}
	case model.TabAI:
		bindings = []key.Binding{m.keys.SubmitAI, m.keys.CopyAI, m.keys.NextTab, m.keys.ForceQuit}
	case model.TabTodos:
		bindings = []key.Binding{m.keys.Refresh, m.keys.Delete, m.keys.Undo, m.keys.Copy, m.keys.NextTab, m.keys.Quit}
	}
	return m.help.ShortHelpView(bindings)
}
