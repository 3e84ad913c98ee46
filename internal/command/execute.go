package command

import (
	"fmt"
	"io"

	"github.com/kelsos/tasktracker/internal/project"
	"github.com/kelsos/tasktracker/internal/report"
)

// Execute applies cmd to p. Reports are written to out; mutations write
// nothing. Lookup failures are returned unchanged so callers can match
// project.ErrNotFound.
func Execute(p *project.Project, out io.Writer, cmd Command) error {
	switch c := cmd.(type) {
	case AddTask:
		p.AddTask(c.Task, c.Priority)
		return nil

	case AddEmployee:
		p.AddEmployee(c.Employee)
		return nil

	case AssignEmployee:
		return p.AssignEmployee(c.Task, c.Employee)

	case FinishTask:
		return p.FinishTask(c.Task)

	case ReportAll:
		return report.WriteAll(out, p.ReportAll())

	case ReportOngoing:
		return report.WriteOngoing(out, p.ReportOngoing())

	case ReportEmployee:
		r, err := p.ReportEmployee(c.Employee)
		if err != nil {
			return err
		}
		return report.WriteEmployee(out, r)
	}

	return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}
