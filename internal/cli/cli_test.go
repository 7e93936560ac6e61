package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/aitodo/internal/model"
)

// service is a minimal todo server that counts hits per path.
type service struct {
	mu     sync.Mutex
	hits   map[string]int
	bodies map[string]string

	todos  []model.Todo
	chat   model.AIResponse
	status int
	// bare sends failures without an error field.
	bare bool
}

func newService(t *testing.T) (*service, *httptest.Server) {
	t.Helper()
	s := &service{hits: map[string]int{}, bodies: map[string]string{}, status: http.StatusOK}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.hits[r.Method+" "+r.URL.Path]++
		s.bodies[r.URL.Path] = string(body)
		status, bare := s.status, s.bare
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			if !bare {
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Text is required"})
			}
			return
		}
		switch r.URL.Path {
		case "/api/todos/":
			_ = json.NewEncoder(w).Encode(map[string]any{"todos": s.todos})
		case "/api/todos/manual":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Todo created successfully!"})
		case "/api/todos/chat":
			_ = json.NewEncoder(w).Encode(s.chat)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return s, srv
}

func (s *service) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key]
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"AITODO_API", "API", "AITODO_THEME", "AITODO_LOG_LEVEL", "AITODO_LOG_FILE"} {
		t.Setenv(k, "")
	}
	return dir
}

func run(args ...string) (code int, stdout, stderr string) {
	var out, errb bytes.Buffer
	code = Run(context.Background(), append([]string{"--theme", "mono"}, args...), &out, &errb)
	return code, out.String(), errb.String()
}

func TestListPrintsTodos(t *testing.T) {
	isolate(t)
	s, srv := newService(t)
	s.todos = []model.Todo{{ID: "1", Text: "Buy milk"}, {ID: "2", Text: "Walk\n the dog"}}

	code, out, _ := run("--api", srv.URL, "ls")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Walk the dog")
	assert.Contains(t, out, "Total 2")
	assert.Equal(t, 1, s.count("GET /api/todos/"))
}

func TestListJSON(t *testing.T) {
	isolate(t)
	s, srv := newService(t)
	s.todos = []model.Todo{{ID: "a1", Text: "Buy milk"}}

	code, out, _ := run("--api", srv.URL, "ls", "--json")
	require.Equal(t, 0, code)

	var got []model.Todo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}

func TestListEmpty(t *testing.T) {
	isolate(t)
	_, srv := newService(t)
	code, out, _ := run("--api", srv.URL, "ls")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "No todos yet")
}

func TestAddCreatesThenRefetches(t *testing.T) {
	isolate(t)
	s, srv := newService(t)
	s.todos = []model.Todo{{ID: "1", Text: "Buy milk"}}

	code, out, _ := run("--api", srv.URL, "add", "Buy", "milk")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Todo created successfully!")
	assert.Contains(t, out, "1 todos")
	assert.Equal(t, 1, s.count("POST /api/todos/manual"))
	assert.Equal(t, 1, s.count("GET /api/todos/"))
	assert.JSONEq(t, `{"text":"Buy milk"}`, s.bodies["/api/todos/manual"])
}

func TestAddBlankIsUsageError(t *testing.T) {
	isolate(t)
	s, srv := newService(t)

	code, _, errOut := run("--api", srv.URL, "add", "  ")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "empty text")
	assert.Zero(t, s.count("POST /api/todos/manual"))
}

func TestAddServerError(t *testing.T) {
	isolate(t)
	s, srv := newService(t)
	s.status = http.StatusBadRequest

	code, _, errOut := run("--api", srv.URL, "add", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: Text is required")
	assert.Zero(t, s.count("GET /api/todos/"))
}

func TestServerErrorWithoutMessageUsesGenericText(t *testing.T) {
	isolate(t)
	s, srv := newService(t)
	s.status = http.StatusInternalServerError
	s.bare = true

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "x"}, "Error: Failed to create todo\n"},
		{[]string{"ask", "hi"}, "Error: Failed to process AI request\n"},
		{[]string{"ls"}, "Error: Failed to fetch todos\n"},
	}
	for _, tt := range tests {
		code, _, errOut := run(append([]string{"--api", srv.URL}, tt.args...)...)
		assert.Equal(t, 1, code, "args %v", tt.args)
		assert.Contains(t, errOut, tt.want, "args %v", tt.args)
	}
}

func TestAskRefetchesOnlyWhenCreated(t *testing.T) {
	isolate(t)
	s, srv := newService(t)

	s.chat = model.AIResponse{ToolUsed: "list_todos", Output: "You have no todos."}
	code, out, _ := run("--api", srv.URL, "ask", "what", "do", "I", "have")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "📋 list todos")
	assert.Contains(t, out, "You have no todos.")
	assert.Zero(t, s.count("GET /api/todos/"))

	s.chat = model.AIResponse{ToolUsed: "create_todo", Output: "✅ Todo created: call mom"}
	code, _, _ = run("--api", srv.URL, "ask", "remind me to call mom")
	require.Equal(t, 0, code)
	assert.Equal(t, 1, s.count("GET /api/todos/"))
	assert.JSONEq(t, `{"prompt":"remind me to call mom"}`, s.bodies["/api/todos/chat"])
}

func TestMissingAPIFails(t *testing.T) {
	isolate(t)
	code, _, errOut := run("ls")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "missing API base URL")
}

func TestNetworkErrorFails(t *testing.T) {
	isolate(t)
	_, srv := newService(t)
	url := srv.URL
	srv.Close()

	code, _, errOut := run("--api", url, "ls")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Network error occurred")
}

func TestUsageErrors(t *testing.T) {
	isolate(t)
	tests := [][]string{
		{"bogus"},
		{"ls", "extra"},
		{"add"},
		{"ls", "--nope"},
		{"config", "set-api"},
	}
	for _, args := range tests {
		code, _, errOut := run(args...)
		assert.Equal(t, 2, code, "args %v", args)
		assert.Contains(t, errOut, "aitodo --help", "args %v", args)
	}
}

func TestConfigSetAPIThenShow(t *testing.T) {
	dir := isolate(t)

	code, out, _ := run("config", "set-api", "http://localhost:3000/")
	require.Equal(t, 0, code)
	path := filepath.Join(dir, "aitodo", "config.yaml")
	assert.Contains(t, out, path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	code, out, _ = run("config")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "http://localhost:3000\n")
	assert.Contains(t, out, path)
}

func TestConfigSetAPIRejectsBadURL(t *testing.T) {
	isolate(t)
	code, _, _ := run("config", "set-api", "localhost:3000")
	assert.Equal(t, 2, code)
}

func TestVersion(t *testing.T) {
	code, out, _ := run("version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "aitodo "+Version+"\n", out)
}
