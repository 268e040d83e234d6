package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/stepform/internal/wizard"
)

// Run shows the wizard full screen until the user quits. It returns the
// number of forms submitted during the session.
func Run(ctx context.Context, ctrl *wizard.Controller, opts Options, progOpts ...tea.ProgramOption) (int, error) {
	m := New(ctx, ctrl, opts)

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(m, progOpts...)

	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	return fm.Submissions, nil
}
