package ui

import (
	"fmt"
	"io"
	"strings"
)

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	return FrameStyle().Render(strings.Join(lines, "\n"))
}

// Dialog is a panel whose border takes the given accent, used for blocking
// acknowledgements.
func Dialog(title, body, hint string, isError bool) string {
	head := SuccessStyle().Bold(true).Render(title)
	border := current.Success
	if isError {
		head = ErrorStyle().Render(title)
		border = current.Error
	}
	inner := head + "\n\n" + body
	if hint != "" {
		inner += "\n\n" + HelpStyle().Render(hint)
	}
	return FrameStyle().BorderForeground(border).Padding(1, 3).Render(inner)
}

// OK and Fail print one-line status messages for the non-interactive commands.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessStyle().Render(current.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, ErrorStyle().Render(current.SymFail+" "+msg))
}
