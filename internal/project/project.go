package project

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kelsos/tasktracker/internal/logger"
	"github.com/kelsos/tasktracker/internal/models"
)

type taskEntry struct {
	priority  int
	lifecycle *lifecycle
	assigned  []string
}

func (e *taskEntry) snapshot(name string) models.Task {
	return models.Task{
		Name:              name,
		Priority:          e.priority,
		Status:            e.lifecycle.status(),
		AssignedEmployees: append([]string(nil), e.assigned...),
	}
}

// Project holds every task and employee of a run. All methods are safe for
// concurrent use; each one runs under a single lock so paired updates of a
// task and its employees are never observed half-applied.
type Project struct {
	mu        sync.Mutex
	tasks     map[string]*taskEntry
	employees map[string]*models.Employee
}

// New creates an empty project
func New() *Project {
	return &Project{
		tasks:     make(map[string]*taskEntry),
		employees: make(map[string]*models.Employee),
	}
}

// AddTask creates a TODO task with no assignments. An existing task with the
// same name is replaced.
func (p *Project) AddTask(name string, priority int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.tasks[name]; exists {
		logger.Debug("Replacing existing task %s", name)
	}
	p.tasks[name] = &taskEntry{priority: priority, lifecycle: newLifecycle()}
}

// AddEmployee creates an employee with no ongoing tasks. An existing employee
// with the same name is replaced.
func (p *Project) AddEmployee(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.employees[name]; exists {
		logger.Debug("Replacing existing employee %s", name)
	}
	p.employees[name] = &models.Employee{Name: name}
}

// Task returns a copy of the named task
func (p *Project) Task(name string) (models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, err := p.task(name)
	if err != nil {
		return models.Task{}, err
	}
	return entry.snapshot(name), nil
}

// Employee returns a copy of the named employee
func (p *Project) Employee(name string) (models.Employee, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	emp, err := p.employee(name)
	if err != nil {
		return models.Employee{}, err
	}
	return emp.Clone(), nil
}

// Tasks returns copies of all tasks ordered by name
func (p *Project) Tasks() []models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()

	tasks := make([]models.Task, 0, len(p.tasks))
	for name, entry := range p.tasks {
		tasks = append(tasks, entry.snapshot(name))
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Name < tasks[j].Name
	})
	return tasks
}

func (p *Project) task(name string) (*taskEntry, error) {
	entry, ok := p.tasks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}
	return entry, nil
}

func (p *Project) employee(name string) (*models.Employee, error) {
	emp, ok := p.employees[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, name)
	}
	return emp, nil
}
