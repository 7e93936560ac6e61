package model

// Tab is the active view of the interactive client.
type Tab int

const (
	TabManual Tab = iota
	TabAI
	TabTodos
)

const tabCount = 3

func (t Tab) Next() Tab { return (t + 1) % tabCount }
func (t Tab) Prev() Tab { return (t + tabCount - 1) % tabCount }

func (t Tab) String() string {
	switch t {
	case TabManual:
		return "manual"
	case TabAI:
		return "ai"
	case TabTodos:
		return "todos"
	}
	return "unknown"
}

// ParseTab maps a tab name to a Tab, defaulting to TabManual.
func ParseTab(s string) Tab {
	switch s {
	case "ai":
		return TabAI
	case "todos":
		return TabTodos
	}
	return TabManual
}
