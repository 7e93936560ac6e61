package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive client on the alt screen and blocks until the
// user quits or ctx is canceled.
func Run(ctx context.Context, gw Gateway, opt Options) error {
	m := New(ctx, gw, opt)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
