package tui

import (
	"bytes"
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/tasktracker/internal/command"
	"github.com/kelsos/tasktracker/internal/logger"
	"github.com/kelsos/tasktracker/internal/project"
)

// Shell runs the interactive task shell
type Shell struct {
	model Model
}

// NewShell creates a shell over p. Options are passed to the interpreter.
func NewShell(p *project.Project, prompt string, historySize int, opts ...command.Option) *Shell {
	out := &bytes.Buffer{}
	interp := command.NewInterpreter(p, out, opts...)

	return &Shell{
		model: NewModel(interp, out, prompt, historySize),
	}
}

// Run starts the TUI and blocks until the user quits or ctx is done.
// Program options are applied after the defaults.
func (s *Shell) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(s.model, opts...)

	logger.Info("Starting interactive shell")
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Info("Shell interrupted: %v", ctxErr)
			return ctxErr
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if m, ok := final.(Model); ok {
		stats := m.interp.Stats()
		logger.Info("Shell closed: %d executed, %d ignored, %d failed",
			stats.Executed, stats.Ignored, stats.Failed)
	}
	return nil
}
