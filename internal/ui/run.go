package ui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"stopline/internal/driver"
)

// RunProgress drives the progress view until events is closed or ctx is done.
// cancel is called when the user quits the view early.
func RunProgress(ctx context.Context, out io.Writer, title string, files []string, events <-chan driver.Event, cancel context.CancelFunc) error {
	model := NewProgressModel(title, files, events)
	p := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx), tea.WithInput(nil))
	final, err := p.Run()
	if m, ok := final.(*progressModel); ok && !m.done && cancel != nil {
		cancel()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
