// Package tui is the interactive todo client: one Bubble Tea model that owns
// all view state and talks to the remote service through a Gateway.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/aitodo/internal/logging"
	"github.com/idilsaglam/aitodo/internal/model"
	"github.com/idilsaglam/aitodo/internal/ui"
)

// Gateway is the remote todo service. *api.Client satisfies it.
type Gateway interface {
	List(ctx context.Context) ([]model.Todo, error)
	CreateManual(ctx context.Context, text string) (string, error)
	CreateViaPrompt(ctx context.Context, prompt string) (model.AIResponse, error)
}

// Options tune the model. The zero value is usable.
type Options struct {
	Logger     *log.Logger
	InitialTab model.Tab

	// AckDelay postpones the success acknowledgement of a manual create
	// past the redraw of the refreshed list.
	AckDelay time.Duration

	// Copy writes to the system clipboard; tests replace it.
	Copy func(string) error
}

const defaultAckDelay = 100 * time.Millisecond

// Acknowledgement texts shown in the blocking dialog.
const (
	msgCreated       = "Todo created successfully!"
	msgCreateFailed  = "Failed to create todo"
	msgAIFailed      = "Failed to process AI request"
	msgNetworkFailed = "Network error occurred"
)

// ack is a blocking acknowledgement; it swallows input until dismissed.
type ack struct {
	text    string
	isError bool
}

// undoEntry remembers the last local deletion (single-level).
type undoEntry struct {
	todos []model.Todo
	index int
}

type keyMap struct {
	NextTab, PrevTab key.Binding
	Submit           key.Binding
	SubmitAI         key.Binding
	Refresh          key.Binding
	Delete           key.Binding
	Undo             key.Binding
	Copy             key.Binding
	CopyAI           key.Binding
	Quit             key.Binding
	ForceQuit        key.Binding
	Confirm, Cancel  key.Binding
	Dismiss          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create todo")),
		SubmitAI:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send to AI")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "hide (local)")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo hide")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		CopyAI:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy response")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Cancel:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok")),
	}
}

// Model is the state store: todos, both input buffers, three independent
// busy flags, the active tab and the last AI response.
type Model struct {
	ctx context.Context
	gw  Gateway
	log *log.Logger

	todos []model.Todo
	list  list.Model

	manual textinput.Model
	prompt textarea.Model

	spinner  spinner.Model
	spinning bool
	help     help.Model
	keys     keyMap

	tab model.Tab

	loadingManual bool
	loadingAI     bool
	loadingTodos  bool

	// fetchSeq numbers list fetches. awaitManual and awaitAI hold the fetch
	// a create is waiting on (0 for none); pendingAck is shown once the
	// manual one lands.
	fetchSeq    int
	awaitManual int
	awaitAI     int
	pendingAck  *ackMsg

	aiResponse *model.AIResponse
	aiRendered string

	ack           *ack
	confirmDelete *model.Todo
	undo          *undoEntry
	status        string

	ackDelay time.Duration
	copy     func(string) error

	width, height int
}

// New builds the model. ctx is used for every request the model issues.
func New(ctx context.Context, gw Gateway, opt Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opt.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	delay := opt.AckDelay
	if delay <= 0 {
		delay = defaultAckDelay
	}
	cp := opt.Copy
	if cp == nil {
		cp = clipboard.WriteAll
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = ui.HelpStyle()
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter your todo (e.g., Buy groceries, Call dentist...)"
	ti.CharLimit = 500

	ta := textarea.New()
	ta.Placeholder = "Tell the AI what you want to do... Examples:\n" +
		"• Create a todo to buy groceries\n" +
		"• Show me all my todos\n" +
		"• Make a note about the meeting\n" +
		"• Get my user information"
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.CharLimit = 2000

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.AccentStyle()

	m := Model{
		ctx:          ctx,
		gw:           gw,
		log:          logger,
		todos:        []model.Todo{},
		list:         l,
		manual:       ti,
		prompt:       ta,
		spinner:      s,
		help:         help.New(),
		keys:         defaultKeyMap(),
		tab:          opt.InitialTab,
		loadingTodos: true,
		spinning:     true,
		ackDelay:     delay,
		copy:         cp,
		width:        80,
		height:       24,
	}
	m.focusActive()
	m.resize()
	return m
}

// Init fetches the list once on start, the only automatic fetch that is not
// a reconciliation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchTodos(), m.spinner.Tick, textinput.Blink)
}

// Todos returns the list as currently held locally.
func (m Model) Todos() []model.Todo { return m.todos }

// AIResponse returns the last AI response, or nil.
func (m Model) AIResponse() *model.AIResponse { return m.aiResponse }

func (m Model) busy() bool { return m.loadingManual || m.loadingAI || m.loadingTodos }

func (m *Model) focusActive() {
	m.manual.Blur()
	m.prompt.Blur()
	switch m.tab {
	case model.TabManual:
		m.manual.Focus()
	case model.TabAI:
		m.prompt.Focus()
	}
}

func (m *Model) resize() {
	w := m.width - 6
	if w < 20 {
		w = 20
	}
	m.manual.Width = w - 2
	m.prompt.SetWidth(w)
	h := m.height - 12
	if h < 4 {
		h = 4
	}
	m.list.SetSize(w, h)
	if m.aiResponse != nil {
		m.aiRendered = ui.RenderMarkdown(m.aiResponse.Output, w-4)
	}
}
