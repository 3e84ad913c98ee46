package project

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/kelsos/tasktracker/internal/models"
)

// State IDs are the TaskStatus values they stand for
const (
	stateTodo    = statekit.StateID(models.TaskStatusTodo)
	stateOngoing = statekit.StateID(models.TaskStatusOngoing)
	stateDone    = statekit.StateID(models.TaskStatusDone)
)

const (
	eventAssign = "assign"
	eventFinish = "finish"
)

type lifecycleContext struct{}

// newLifecycle starts a fresh TODO machine for one task. The machine is built
// once and every task gets its own interpreter.
var newLifecycle = mustBuildLifecycle()

func mustBuildLifecycle() func() *lifecycle {
	builder := statekit.NewMachine[lifecycleContext]("task-lifecycle").
		WithInitial(stateTodo).
		WithContext(lifecycleContext{})

	builder.State(stateTodo).
		On(eventAssign).Target(stateOngoing).
		Done()

	builder.State(stateOngoing).
		On(eventAssign).Target(stateOngoing).
		On(eventFinish).Target(stateDone).
		Done()

	// Assigning to a finished task still records the assignment; the task
	// stays DONE.
	builder.State(stateDone).
		On(eventAssign).Target(stateDone).
		Done()

	machine, err := builder.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build task lifecycle: %v", err))
	}

	return func() *lifecycle {
		interpreter := statekit.NewInterpreter(machine)
		interpreter.Start()
		return &lifecycle{interpreter: interpreter}
	}
}

// lifecycle tracks the TODO -> ONGOING -> DONE progression of a task.
type lifecycle struct {
	interpreter *statekit.Interpreter[lifecycleContext]
}

func (l *lifecycle) send(event string) models.TaskStatus {
	l.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	return l.status()
}

func (l *lifecycle) status() models.TaskStatus {
	return models.TaskStatus(l.interpreter.State().Value)
}
