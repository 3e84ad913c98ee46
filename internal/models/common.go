package models

// StatusCounts is the result of an all-tasks report
type StatusCounts struct {
	Todo    int
	Ongoing int
	Done    int
}

// Total returns the number of tasks counted
func (c StatusCounts) Total() int {
	return c.Todo + c.Ongoing + c.Done
}

// OngoingEntry is one line of the ongoing report. Employees are deduplicated
// and sorted.
type OngoingEntry struct {
	Task      string
	Priority  int
	Employees []string
}

// EmployeeReport is the result of a per-employee report. OngoingTasks keeps
// assignment order and duplicates.
type EmployeeReport struct {
	Employee     string
	DoneTasks    int
	OngoingTasks []string
}
