package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoDecodesServerShape(t *testing.T) {
	var td Todo
	err := json.Unmarshal([]byte(`{"_id":"1","text":"Buy milk","createdAt":"2024-01-01T00:00:00Z"}`), &td)
	require.NoError(t, err)

	assert.Equal(t, "1", td.ID)
	assert.Equal(t, "Buy milk", td.Text)
	assert.True(t, td.CreatedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTimestampAcceptsEpochMillis(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1704067200000`), &ts))
	assert.True(t, ts.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTimestampToleratesGarbage(t *testing.T) {
	for _, raw := range []string{`null`, `"yesterday"`, `""`, `true`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), raw)
		assert.True(t, ts.IsZero(), raw)
		assert.Equal(t, "", ts.Display(), raw)
	}
}

func TestTimestampDisplayUsesLocalTime(t *testing.T) {
	prev := time.Local
	time.Local = time.UTC
	defer func() { time.Local = prev }()

	ts := Timestamp{time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)}
	assert.Equal(t, "Mar 5, 2024, 02:07 PM", ts.Display())
}

func TestRemoveByIDDropsEveryMatch(t *testing.T) {
	todos := []Todo{{ID: "1", Text: "a"}, {ID: "2", Text: "b"}, {ID: "1", Text: "c"}, {ID: "3", Text: "d"}}

	kept, removed, first := RemoveByID(todos, "1")

	assert.Equal(t, []Todo{{ID: "2", Text: "b"}, {ID: "3", Text: "d"}}, kept)
	assert.Len(t, removed, 2)
	assert.Equal(t, 0, first)
	assert.Len(t, todos, 4, "input slice must not be modified")
}

func TestRemoveByIDNoMatch(t *testing.T) {
	todos := []Todo{{ID: "1"}}
	kept, removed, first := RemoveByID(todos, "9")
	assert.Equal(t, todos, kept)
	assert.Empty(t, removed)
	assert.Equal(t, -1, first)
}
