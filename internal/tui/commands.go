package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/aitodo/internal/api"
	"github.com/idilsaglam/aitodo/internal/model"
)

// Message types
type todosLoadedMsg struct {
	seq   int
	todos []model.Todo
	err   error
}

type manualCreatedMsg struct {
	message string
	err     error
}

type aiRespondedMsg struct {
	resp model.AIResponse
	err  error
}

type ackMsg struct {
	text    string
	isError bool
}

// Each command captures the gateway and context rather than the model, so
// a result is applied to whatever state the model is in when it arrives.

func (m Model) fetchTodos() tea.Cmd {
	gw, ctx, seq := m.gw, m.ctx, m.fetchSeq
	return func() tea.Msg {
		todos, err := gw.List(ctx)
		return todosLoadedMsg{seq: seq, todos: todos, err: err}
	}
}

func (m Model) createManual(text string) tea.Cmd {
	gw, ctx := m.gw, m.ctx
	return func() tea.Msg {
		msg, err := gw.CreateManual(ctx, text)
		return manualCreatedMsg{message: msg, err: err}
	}
}

func (m Model) createViaPrompt(prompt string) tea.Cmd {
	gw, ctx := m.gw, m.ctx
	return func() tea.Msg {
		resp, err := gw.CreateViaPrompt(ctx, prompt)
		return aiRespondedMsg{resp: resp, err: err}
	}
}

func ackAfter(d time.Duration, a ackMsg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return a })
}

// failureAck turns a failed create into the text of its acknowledgement.
// Blank input is not reported at all.
func failureAck(err error, fallback string) (ackMsg, bool) {
	switch {
	case errors.Is(err, api.ErrEmptyInput):
		return ackMsg{}, false
	case api.IsStatus(err):
		text := api.ServerMessage(err)
		if text == "" {
			text = fallback
		}
		return ackMsg{text: "Error: " + text, isError: true}, true
	default:
		return ackMsg{text: msgNetworkFailed, isError: true}, true
	}
}
