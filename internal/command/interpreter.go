package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kelsos/tasktracker/internal/logger"
	"github.com/kelsos/tasktracker/internal/project"
)

// LineError reports the input line that stopped a run
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Stats counts what happened to the lines seen by an Interpreter
type Stats struct {
	Executed int
	Ignored  int
	Failed   int
}

// Interpreter feeds text commands into a project one line at a time
type Interpreter struct {
	project      *project.Project
	out          io.Writer
	abortOnError bool
	echo         bool
	line         int
	stats        Stats
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithAbortOnError stops Run at the first lookup failure instead of skipping
// the offending line.
func WithAbortOnError(abort bool) Option {
	return func(i *Interpreter) {
		i.abortOnError = abort
	}
}

// WithEcho logs every accepted command at debug level
func WithEcho(echo bool) Option {
	return func(i *Interpreter) {
		i.echo = echo
	}
}

// NewInterpreter creates an interpreter writing report output to out
func NewInterpreter(p *project.Project, out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{project: p, out: out}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Project returns the project the interpreter mutates
func (i *Interpreter) Project() *project.Project {
	return i.project
}

// Stats returns the counters accumulated so far
func (i *Interpreter) Stats() Stats {
	return i.stats
}

// ExecuteLine parses and runs a single line. Malformed lines come back as
// errors wrapping ErrMalformed and have no effect; lookup failures wrap
// project.ErrNotFound and leave the project unchanged.
func (i *Interpreter) ExecuteLine(text string) error {
	i.line++

	cmd, err := Parse(text)
	if err != nil {
		if !errors.Is(err, ErrEmptyLine) {
			i.stats.Ignored++
			logger.Debug("Ignoring line %d: %v", i.line, err)
		}
		return err
	}

	if i.echo {
		logger.Debug("Line %d: %s", i.line, cmd.Name())
	}

	if err := Execute(i.project, i.out, cmd); err != nil {
		i.stats.Failed++
		return &LineError{Line: i.line, Text: text, Err: err}
	}

	i.stats.Executed++
	return nil
}

// Run executes every line of r. Malformed lines are skipped silently. Lookup
// failures are logged and skipped, or returned when abort on error is set.
// Output write failures always stop the run. Run returns ctx.Err() as soon as
// ctx is done, even while r is blocked.
func (i *Interpreter) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var res readResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				logger.Debug("Processed %d lines: %d executed, %d ignored, %d failed",
					i.line, i.stats.Executed, i.stats.Ignored, i.stats.Failed)
				return nil
			}
			res = next
		}

		if res.err != nil {
			return fmt.Errorf("failed to read commands: %w", res.err)
		}

		err := i.ExecuteLine(res.text)
		switch {
		case err == nil, errors.Is(err, ErrMalformed):
			continue
		case errors.Is(err, project.ErrNotFound):
			if i.abortOnError {
				return err
			}
			logger.Warn("Skipping %v", err)
		default:
			return err
		}
	}
}

type readResult struct {
	text string
	err  error
}

// readLines delivers the lines of r until EOF, a read error or ctx is done.
// Lines have no length limit.
func readLines(ctx context.Context, r io.Reader) <-chan readResult {
	lines := make(chan readResult)

	go func() {
		defer close(lines)

		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')

			var res readResult
			switch {
			case err != nil && err != io.EOF:
				res.err = err
			case text != "":
				res.text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			default:
				return
			}

			select {
			case lines <- res:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	return lines
}
