package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kelsos/tasktracker/internal/models"
)

// WriteAll prints the TODO, ONGOING and DONE counts, one per line
func WriteAll(w io.Writer, counts models.StatusCounts) error {
	_, err := fmt.Fprintf(w, "%s: %d\n%s: %d\n%s: %d\n",
		models.TaskStatusTodo, counts.Todo,
		models.TaskStatusOngoing, counts.Ongoing,
		models.TaskStatusDone, counts.Done)
	return err
}

// WriteOngoing prints one "name (priority): a, b" line per entry, in the
// order given.
func WriteOngoing(w io.Writer, entries []models.OngoingEntry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s (%d): %s\n",
			entry.Task, entry.Priority, strings.Join(entry.Employees, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteEmployee prints the done count and the numbered ongoing tasks
func WriteEmployee(w io.Writer, r models.EmployeeReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s has done %d tasks.\n", r.Employee, r.DoneTasks)
	if len(r.OngoingTasks) == 0 {
		fmt.Fprintf(&b, "%s is currently not working on any tasks.\n", r.Employee)
	} else {
		fmt.Fprintf(&b, "%s is currently working on these tasks:\n", r.Employee)
		for i, task := range r.OngoingTasks {
			fmt.Fprintf(&b, "%d. %s\n", i+1, task)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
