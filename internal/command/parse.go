package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformed      = errors.New("malformed command")
	ErrEmptyLine      = fmt.Errorf("%w: empty line", ErrMalformed)
	ErrUnknownCommand = fmt.Errorf("%w: unknown command", ErrMalformed)
	ErrArity          = fmt.Errorf("%w: wrong number of arguments", ErrMalformed)
	ErrBadPriority    = fmt.Errorf("%w: priority is not an integer", ErrMalformed)
	ErrUnknownReport  = fmt.Errorf("%w: unknown report", ErrMalformed)
)

// Tokenize splits a line on runs of whitespace
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Parse turns one input line into a Command. Every error it returns wraps
// ErrMalformed.
func Parse(line string) (Command, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, ErrEmptyLine
	}

	args := tokens[1:]
	switch tokens[0] {
	case NameAddTask:
		if len(args) != 2 {
			return nil, arityError(tokens[0], 2, len(args))
		}
		priority, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPriority, args[1])
		}
		return AddTask{Task: args[0], Priority: priority}, nil

	case NameAddEmployee:
		if len(args) != 1 {
			return nil, arityError(tokens[0], 1, len(args))
		}
		return AddEmployee{Employee: args[0]}, nil

	case NameAssignEmployee:
		if len(args) != 2 {
			return nil, arityError(tokens[0], 2, len(args))
		}
		return AssignEmployee{Task: args[0], Employee: args[1]}, nil

	case NameFinishTask:
		if len(args) != 1 {
			return nil, arityError(tokens[0], 1, len(args))
		}
		return FinishTask{Task: args[0]}, nil

	case NameReport:
		return parseReport(args)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, tokens[0])
}

// parseReport only looks at the tokens it needs: trailing tokens after
// "all" and "ongoing" are ignored.
func parseReport(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: report needs a kind", ErrArity)
	}

	switch args[0] {
	case ReportKindAll:
		return ReportAll{}, nil
	case ReportKindOngoing:
		return ReportOngoing{}, nil
	case ReportKindEmployee:
		if len(args) != 2 {
			return nil, arityError("report employee", 1, len(args)-1)
		}
		return ReportEmployee{Employee: args[1]}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, args[0])
}

func arityError(name string, want, got int) error {
	return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, want, got)
}
