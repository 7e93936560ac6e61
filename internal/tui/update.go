package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/aitodo/internal/model"
	"github.com/idilsaglam/aitodo/internal/ui"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case todosLoadedMsg:
		return m.handleTodosLoaded(msg)

	case manualCreatedMsg:
		return m.handleManualCreated(msg)

	case aiRespondedMsg:
		return m.handleAIResponded(msg)

	case ackMsg:
		a := ack(msg)
		m.ack = &a
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveInput(msg)
}

// List failures are logged only; whatever is on screen stays. Either way
// the fetch ends any create waiting on it, and only then is the create
// acknowledged.
func (m Model) handleTodosLoaded(msg todosLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingTodos = false
	pending := m.releaseReconciled(msg.seq)
	if msg.err != nil {
		m.log.Error("failed to fetch todos", "err", msg.err)
		return m, pending
	}
	m.log.Debug("fetched todos", "count", len(msg.todos))
	cmd := m.setTodos(msg.todos)
	return m, tea.Batch(cmd, pending)
}

// A successful manual create clears the buffer and reconciles with a full
// refetch. The manual control stays busy until the refetch lands; the
// acknowledgement follows it.
func (m Model) handleManualCreated(msg manualCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loadingManual = false
		m.log.Warn("create todo failed", "err", msg.err)
		a, show := failureAck(msg.err, msgCreateFailed)
		if !show {
			return m, nil
		}
		return m, func() tea.Msg { return a }
	}

	m.manual.SetValue("")
	text := msg.message
	if text == "" {
		text = msgCreated
	}
	fetch := m.startFetch()
	m.awaitManual = m.fetchSeq
	m.pendingAck = &ackMsg{text: text}
	return m, fetch
}

// The AI path only refetches when the response says a todo was created,
// and then stays busy until that refetch lands.
func (m Model) handleAIResponded(msg aiRespondedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loadingAI = false
		m.log.Warn("ai request failed", "err", msg.err)
		a, show := failureAck(msg.err, msgAIFailed)
		if !show {
			return m, nil
		}
		return m, func() tea.Msg { return a }
	}

	resp := msg.resp
	m.aiResponse = &resp
	m.aiRendered = ui.RenderMarkdown(resp.Output, m.width-10)
	m.prompt.Reset()
	m.log.Info("ai responded", "tool", resp.Tool().String(), "created", resp.CreatedTodo())

	if resp.CreatedTodo() {
		fetch := m.startFetch()
		m.awaitAI = m.fetchSeq
		return m, fetch
	}
	m.loadingAI = false
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	m.status = ""

	if m.ack != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.ack = nil
		}
		return m, nil
	}

	if m.confirmDelete != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			id := m.confirmDelete.ID
			m.confirmDelete = nil
			cmd := m.deleteLocal(id)
			return m, cmd
		case key.Matches(msg, m.keys.Cancel):
			m.confirmDelete = nil
		}
		return m, nil
	}

	// While the filter prompt is open every key belongs to the list.
	filtering := m.tab == model.TabTodos && m.list.FilterState() == list.Filtering
	if !filtering {
		switch {
		case key.Matches(msg, m.keys.NextTab):
			m.tab = m.tab.Next()
			m.focusActive()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = m.tab.Prev()
			m.focusActive()
			return m, nil
		}
	}

	switch m.tab {
	case model.TabManual:
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submitManual()
		case msg.Type == tea.KeyEsc:
			return m, tea.Quit
		}
		if m.loadingManual {
			return m, nil
		}

	case model.TabAI:
		switch {
		case key.Matches(msg, m.keys.SubmitAI):
			return m.submitAI()
		case key.Matches(msg, m.keys.CopyAI):
			if m.aiResponse != nil {
				m.copyText(m.aiResponse.Output)
			}
			return m, nil
		case msg.Type == tea.KeyEsc:
			return m, tea.Quit
		}
		if m.loadingAI {
			return m, nil
		}

	case model.TabTodos:
		if filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.loadingTodos {
				return m, nil
			}
			fetch := m.startFetch()
			return m, fetch
		case key.Matches(msg, m.keys.Delete):
			if it, ok := m.list.SelectedItem().(listItem); ok {
				td := it.todo
				m.confirmDelete = &td
			}
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			cmd := m.undoDelete()
			return m, cmd
		case key.Matches(msg, m.keys.Copy):
			if it, ok := m.list.SelectedItem().(listItem); ok {
				m.copyText(it.todo.Text)
			}
			return m, nil
		}
	}

	return m.updateActiveInput(msg)
}

func (m Model) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case model.TabManual:
		m.manual, cmd = m.manual.Update(msg)
	case model.TabAI:
		m.prompt, cmd = m.prompt.Update(msg)
	case model.TabTodos:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// Blank input and a request already in flight are silent no-ops.
func (m Model) submitManual() (tea.Model, tea.Cmd) {
	text := m.manual.Value()
	if m.loadingManual || strings.TrimSpace(text) == "" {
		return m, nil
	}
	m.loadingManual = true
	cmd := tea.Batch(m.createManual(text), m.startSpinner())
	return m, cmd
}

func (m Model) submitAI() (tea.Model, tea.Cmd) {
	prompt := m.prompt.Value()
	if m.loadingAI || strings.TrimSpace(prompt) == "" {
		return m, nil
	}
	m.loadingAI = true
	m.aiResponse = nil
	m.aiRendered = ""
	cmd := tea.Batch(m.createViaPrompt(prompt), m.startSpinner())
	return m, cmd
}

// releaseReconciled clears the busy flags of creates whose refetch is seq
// or earlier and returns the delayed acknowledgement, if one is due.
func (m *Model) releaseReconciled(seq int) tea.Cmd {
	if m.awaitAI != 0 && seq >= m.awaitAI {
		m.awaitAI = 0
		m.loadingAI = false
	}
	if m.awaitManual == 0 || seq < m.awaitManual {
		return nil
	}
	m.awaitManual = 0
	m.loadingManual = false
	if m.pendingAck == nil {
		return nil
	}
	a := *m.pendingAck
	m.pendingAck = nil
	return ackAfter(m.ackDelay, a)
}

// startFetch marks the list busy and returns the fetch command.
func (m *Model) startFetch() tea.Cmd {
	m.fetchSeq++
	m.loadingTodos = true
	return tea.Batch(m.fetchTodos(), m.startSpinner())
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) setTodos(todos []model.Todo) tea.Cmd {
	if todos == nil {
		todos = []model.Todo{}
	}
	m.todos = todos
	m.undo = nil
	return m.list.SetItems(toListItems(todos))
}

// deleteLocal hides every todo with the given ID from the local list. The
// server is not told; the next fetch brings the todo back.
func (m *Model) deleteLocal(id string) tea.Cmd {
	kept, removed, first := model.RemoveByID(m.todos, id)
	if len(removed) == 0 {
		return nil
	}
	m.todos = kept
	m.undo = &undoEntry{todos: removed, index: first}
	m.log.Info("todo hidden locally", "id", id, "removed", len(removed))
	return m.list.SetItems(toListItems(kept))
}

func (m *Model) undoDelete() tea.Cmd {
	if m.undo == nil {
		return nil
	}
	idx := m.undo.index
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.todos) {
		idx = len(m.todos)
	}
	restored := make([]model.Todo, 0, len(m.todos)+len(m.undo.todos))
	restored = append(restored, m.todos[:idx]...)
	restored = append(restored, m.undo.todos...)
	restored = append(restored, m.todos[idx:]...)
	m.todos = restored
	m.undo = nil
	return m.list.SetItems(toListItems(restored))
}

func (m *Model) copyText(s string) {
	if err := m.copy(s); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied to clipboard"
}
