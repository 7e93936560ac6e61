package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/aitodo/internal/model"
	"github.com/idilsaglam/aitodo/internal/ui"
)

// listItem adapts model.Todo to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

func (i listItem) FilterValue() string { return i.todo.Text }

func toListItems(todos []model.Todo) []list.Item {
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, listItem{todo: t})
	}
	return items
}

// Custom delegate: todo text on the first line, creation time below it.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	// Multi-line todos collapse to one line; the list assumes fixed height.
	text := strings.Join(strings.Fields(it.todo.Text), " ")
	created := it.todo.CreatedAt.Display()

	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle().Render(">") + " "
		text = ui.TitleStyle().Render(text)
	}
	fmt.Fprintf(w, "%s%s\n  %s", prefix, text, ui.MutedStyle().Render(created))
}
