package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyInput is returned, without any request being made, when the text
// or prompt is blank.
var ErrEmptyInput = errors.New("api: empty input")

// StatusError is a non-2xx response. Message holds the server's "error"
// field and is empty when the server sent none.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %d %s: %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

// NetworkError means the request never produced a usable response: the
// transport failed or a successful body could not be decoded.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// IsStatus reports whether err is an HTTP-level failure.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ServerMessage returns the server-provided error text, or "".
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
