package command

// Command is one parsed input line. The set of implementations is closed;
// Execute switches over all of them.
type Command interface {
	Name() string
	command()
}

// Command names as they appear in the input
const (
	NameAddTask        = "add_task"
	NameAddEmployee    = "add_employee"
	NameAssignEmployee = "assign_employee"
	NameFinishTask     = "finish_task"
	NameReport         = "report"

	ReportKindAll      = "all"
	ReportKindOngoing  = "ongoing"
	ReportKindEmployee = "employee"
)

type AddTask struct {
	Task     string
	Priority int
}

type AddEmployee struct {
	Employee string
}

type AssignEmployee struct {
	Task     string
	Employee string
}

type FinishTask struct {
	Task string
}

type ReportAll struct{}

type ReportOngoing struct{}

type ReportEmployee struct {
	Employee string
}

func (AddTask) Name() string        { return NameAddTask }
func (AddEmployee) Name() string    { return NameAddEmployee }
func (AssignEmployee) Name() string { return NameAssignEmployee }
func (FinishTask) Name() string     { return NameFinishTask }
func (ReportAll) Name() string      { return NameReport + " " + ReportKindAll }
func (ReportOngoing) Name() string  { return NameReport + " " + ReportKindOngoing }
func (ReportEmployee) Name() string { return NameReport + " " + ReportKindEmployee }

func (AddTask) command()        {}
func (AddEmployee) command()    {}
func (AssignEmployee) command() {}
func (FinishTask) command()     {}
func (ReportAll) command()      {}
func (ReportOngoing) command()  {}
func (ReportEmployee) command() {}
