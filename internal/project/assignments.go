package project

import (
	"github.com/kelsos/tasktracker/internal/logger"
	"github.com/kelsos/tasktracker/internal/models"
)

// AssignEmployee records that empName works on taskName. Both must exist.
// The assignment is appended on both sides even when it repeats an earlier
// one or the task is already DONE; a TODO task becomes ONGOING.
func (p *Project) AssignEmployee(taskName, empName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	task, err := p.task(taskName)
	if err != nil {
		return err
	}
	emp, err := p.employee(empName)
	if err != nil {
		return err
	}

	before := task.lifecycle.status()
	after := task.lifecycle.send(eventAssign)
	if before != after {
		logger.Debug("Task %s moved from %s to %s", taskName, before, after)
	}

	task.assigned = append(task.assigned, empName)
	emp.OngoingTasks = append(emp.OngoingTasks, taskName)
	return nil
}

// FinishTask marks an ONGOING task as DONE. Every assigned employee drops all
// entries for the task and is credited one done task per entry dropped. Tasks
// in any other state are left untouched.
func (p *Project) FinishTask(taskName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	task, err := p.task(taskName)
	if err != nil {
		return err
	}

	if task.lifecycle.status() != models.TaskStatusOngoing {
		logger.Debug("Ignoring finish for task %s in state %s", taskName, task.lifecycle.status())
		return nil
	}
	task.lifecycle.send(eventFinish)

	for _, empName := range task.assigned {
		emp, ok := p.employees[empName]
		if !ok {
			continue
		}
		emp.DoneTasks += removeAll(&emp.OngoingTasks, taskName)
	}
	task.assigned = nil

	return nil
}

// removeAll deletes every occurrence of name from list in place, keeping the
// order of what remains, and returns how many were removed.
func removeAll(list *[]string, name string) int {
	kept := (*list)[:0]
	for _, item := range *list {
		if item != name {
			kept = append(kept, item)
		}
	}
	removed := len(*list) - len(kept)
	*list = kept
	return removed
}
