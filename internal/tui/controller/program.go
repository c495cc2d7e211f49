package controller

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"marios/internal/tui/model"
	"marios/internal/wm"
)

// ErrProgramStopped is returned by Do once the program has exited.
var ErrProgramStopped = errors.New("desktop is not running")

// Program runs the desktop and lets other goroutines operate on its window
// manager through the UI loop.
type Program struct {
	program *tea.Program
	done    chan struct{}
}

// NewProgram creates the Bubble Tea program for an initialized model.
func NewProgram(m *model.Model, opts ...tea.ProgramOption) *Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return &Program{
		program: tea.NewProgram(NewAppModel(m), opts...),
		done:    make(chan struct{}),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (p *Program) Run(ctx context.Context) error {
	defer close(p.done)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			p.program.Quit()
		case <-stop:
		}
	}()

	if _, err := p.program.Run(); err != nil {
		return fmt.Errorf("error running desktop: %w", err)
	}
	return nil
}

// Do runs fn on the UI loop and waits for its result.
func (p *Program) Do(ctx context.Context, fn func(m *wm.Manager) error) error {
	select {
	case <-p.done:
		return ErrProgramStopped
	default:
	}

	result := make(chan error, 1)
	go p.program.Send(model.ExecMsg{Fn: fn, Result: result})

	select {
	case err := <-result:
		return err
	case <-p.done:
		return ErrProgramStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
