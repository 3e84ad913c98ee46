package project

import (
	"testing"

	"github.com/kelsos/tasktracker/internal/models"
)

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   models.TaskStatus
	}{
		{"initial", nil, models.TaskStatusTodo},
		{"finish before start", []string{eventFinish}, models.TaskStatusTodo},
		{"assign starts", []string{eventAssign}, models.TaskStatusOngoing},
		{"assign again", []string{eventAssign, eventAssign}, models.TaskStatusOngoing},
		{"finish", []string{eventAssign, eventFinish}, models.TaskStatusDone},
		{"assign after done", []string{eventAssign, eventFinish, eventAssign}, models.TaskStatusDone},
		{"finish twice", []string{eventAssign, eventFinish, eventFinish}, models.TaskStatusDone},
		{"unknown event", []string{"reopen"}, models.TaskStatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLifecycle()
			for _, ev := range tt.events {
				l.send(ev)
			}
			if got := l.status(); got != tt.want {
				t.Fatalf("status() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLifecycle_Independent(t *testing.T) {
	a := newLifecycle()
	b := newLifecycle()

	a.send(eventAssign)

	if b.status() != models.TaskStatusTodo {
		t.Fatalf("second lifecycle status = %s, want %s", b.status(), models.TaskStatusTodo)
	}
}

func TestLifecycle_StatesAreTaskStatuses(t *testing.T) {
	known := map[models.TaskStatus]bool{
		models.TaskStatusTodo:    true,
		models.TaskStatusOngoing: true,
		models.TaskStatusDone:    true,
	}

	l := newLifecycle()
	seen := []models.TaskStatus{l.status()}
	for _, event := range []string{eventFinish, eventAssign, eventAssign, eventFinish, eventAssign, eventFinish} {
		seen = append(seen, l.send(event))
	}

	for _, status := range seen {
		if !known[status] {
			t.Fatalf("lifecycle reported %q, want a known TaskStatus", status)
		}
	}
	if got := seen[len(seen)-1]; got != models.TaskStatusDone {
		t.Fatalf("final status = %s, want %s", got, models.TaskStatusDone)
	}
}
