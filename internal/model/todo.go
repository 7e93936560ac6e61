package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Todo is a server-owned todo entry. The client never assigns IDs.
type Todo struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	CreatedAt Timestamp `json:"createdAt"`
}

// DisplayLayout is how creation times are shown to the user.
const DisplayLayout = "Jan 2, 2006, 03:04 PM"

// Timestamp accepts either an RFC 3339 string or epoch milliseconds.
// Anything else decodes to the zero time rather than failing the whole list.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t.Time = parseTimeString(s)
		return nil
	}
	ms, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// Display renders the timestamp in local time, or "" when unknown.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DisplayLayout)
}

func parseTimeString(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}
	return time.Time{}
}

// RemoveByID drops every todo whose ID equals id and reports what was removed
// along with the index of the first removed entry (-1 when nothing matched).
func RemoveByID(todos []Todo, id string) (kept, removed []Todo, first int) {
	first = -1
	kept = make([]Todo, 0, len(todos))
	for i, t := range todos {
		if t.ID == id {
			if first < 0 {
				first = i
			}
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	return kept, removed, first
}
