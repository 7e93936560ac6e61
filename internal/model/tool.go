package model

import "strings"

// Tool identifies which server-side tool handled an AI request.
type Tool int

const (
	ToolNone Tool = iota
	ToolCreateTodo
	ToolListTodos
	ToolCreateNote
	ToolGetUserInfo
	ToolUnknown
)

// TodoCreatedMarker appears in the AI output when the server created a todo
// without reporting create_todo as the tool.
const TodoCreatedMarker = "✅ Todo created"

var toolNames = map[string]Tool{
	"create_todo":   ToolCreateTodo,
	"list_todos":    ToolListTodos,
	"create_note":   ToolCreateNote,
	"get_user_info": ToolGetUserInfo,
}

// ParseTool never fails: empty or "none" is ToolNone and anything
// unrecognised is ToolUnknown. Names match exactly.
func ParseTool(name string) Tool {
	if name == "" || name == "none" {
		return ToolNone
	}
	if t, ok := toolNames[name]; ok {
		return t
	}
	return ToolUnknown
}

func (t Tool) String() string {
	switch t {
	case ToolNone:
		return "none"
	case ToolCreateTodo:
		return "create_todo"
	case ToolListTodos:
		return "list_todos"
	case ToolCreateNote:
		return "create_note"
	case ToolGetUserInfo:
		return "get_user_info"
	default:
		return "unknown"
	}
}

// AIResponse is the transient result of an AI request.
type AIResponse struct {
	ToolUsed string `json:"tool_used"`
	Output   string `json:"output"`
}

func (r AIResponse) Tool() Tool { return ParseTool(r.ToolUsed) }

// CreatedTodo reports whether the server state changed and the list should
// be fetched again.
func (r AIResponse) CreatedTodo() bool {
	return r.Tool() == ToolCreateTodo || strings.Contains(r.Output, TodoCreatedMarker)
}
