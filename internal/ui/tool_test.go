package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/aitodo/internal/model"
)

func TestToolGlyph(t *testing.T) {
	tests := map[string]string{
		"create_todo":   "✅",
		"list_todos":    "📋",
		"create_note":   "📝",
		"get_user_info": "👤",
		"summarize":     "🤖",
		"":              "🤖",
	}
	for name, want := range tests {
		assert.Equal(t, want, ToolGlyph(model.ParseTool(name)), name)
	}
}

func TestToolBadge(t *testing.T) {
	assert.Empty(t, ToolBadge(model.AIResponse{ToolUsed: "none", Output: "hi"}))
	assert.Empty(t, ToolBadge(model.AIResponse{Output: "hi"}))

	badge := ToolBadge(model.AIResponse{ToolUsed: "get_user_info"})
	assert.Contains(t, badge, "👤")
	assert.Contains(t, badge, "get user info")

	badge = ToolBadge(model.AIResponse{ToolUsed: "send_email"})
	assert.Contains(t, badge, "🤖")
	assert.Contains(t, badge, "send email")
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	defer SetTheme("classic")

	SetTheme("mono")
	assert.Equal(t, "mono", Current().Name)
	SetTheme("does-not-exist")
	assert.Equal(t, "classic", Current().Name)
	SetTheme(" NEON ")
	assert.Equal(t, "neon", Current().Name)
}

func TestOKAndFailWriteOneLine(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "boom")
	assert.Contains(t, buf.String(), "added")
	assert.Contains(t, buf.String(), "boom")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestRenderMarkdownKeepsText(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "", RenderMarkdown("", 40))
	assert.Contains(t, RenderMarkdown("Here are your todos...", 40), "Here are your todos...")
}
