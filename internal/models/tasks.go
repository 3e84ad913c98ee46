package models

type TaskStatus string

const (
	TaskStatusTodo    TaskStatus = "TODO"
	TaskStatusOngoing TaskStatus = "ONGOING"
	TaskStatusDone    TaskStatus = "DONE"
)

func (s TaskStatus) String() string {
	return string(s)
}

// Task is a unit of work tracked by name
type Task struct {
	Name              string
	Priority          int
	Status            TaskStatus
	AssignedEmployees []string
}
