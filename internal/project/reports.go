package project

import (
	"sort"

	"github.com/kelsos/tasktracker/internal/models"
)

// ReportAll counts tasks by status
func (p *Project) ReportAll() models.StatusCounts {
	p.mu.Lock()
	defer p.mu.Unlock()

	var counts models.StatusCounts
	for _, entry := range p.tasks {
		switch entry.lifecycle.status() {
		case models.TaskStatusTodo:
			counts.Todo++
		case models.TaskStatusOngoing:
			counts.Ongoing++
		case models.TaskStatusDone:
			counts.Done++
		}
	}
	return counts
}

// ReportOngoing lists ONGOING tasks ordered by priority, then name
func (p *Project) ReportOngoing() []models.OngoingEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries := []models.OngoingEntry{}
	for name, entry := range p.tasks {
		if entry.lifecycle.status() != models.TaskStatusOngoing {
			continue
		}
		entries = append(entries, models.OngoingEntry{
			Task:      name,
			Priority:  entry.priority,
			Employees: uniqueSorted(entry.assigned),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority < entries[j].Priority
		}
		return entries[i].Task < entries[j].Task
	})
	return entries
}

// ReportEmployee returns the done count and ongoing tasks of one employee
func (p *Project) ReportEmployee(name string) (models.EmployeeReport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	emp, err := p.employee(name)
	if err != nil {
		return models.EmployeeReport{}, err
	}
	return models.EmployeeReport{
		Employee:     name,
		DoneTasks:    emp.DoneTasks,
		OngoingTasks: append([]string(nil), emp.OngoingTasks...),
	}, nil
}

func uniqueSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
