package models

// Employee is a named worker. OngoingTasks keeps one entry per assignment,
// so a task assigned twice appears twice.
type Employee struct {
	Name         string
	OngoingTasks []string
	DoneTasks    int
}

// Clone returns a copy that shares no slices with the receiver
func (e Employee) Clone() Employee {
	e.OngoingTasks = append([]string(nil), e.OngoingTasks...)
	return e
}
