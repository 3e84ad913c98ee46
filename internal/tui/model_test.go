package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/tasktracker/internal/command"
	"github.com/kelsos/tasktracker/internal/project"
)

func newTestModel(historySize int) Model {
	out := &bytes.Buffer{}
	interp := command.NewInterpreter(project.New(), out)
	return NewModel(interp, out, "> ", historySize)
}

func enter(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.input.SetValue(line)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected Model update type, got %T", updated)
	}
	return next
}

func TestModel_SubmitRunsCommands(t *testing.T) {
	m := newTestModel(100)
	m = enter(t, m, "add_task t1 5")
	m = enter(t, m, "add_employee e1")
	m = enter(t, m, "assign_employee t1 e1")
	m = enter(t, m, "report ongoing")

	history := strings.Join(m.History(), "\n")
	if !strings.Contains(history, "t1 (5): e1") {
		t.Fatalf("history missing report output:\n%s", history)
	}
	if m.input.Value() != "" {
		t.Fatalf("input = %q, want cleared", m.input.Value())
	}
	if m.counts.Ongoing != 1 {
		t.Fatalf("counts = %+v, want 1 ongoing", m.counts)
	}
	if rows := m.tasks.Rows(); len(rows) != 1 || rows[0][2] != "ONGOING" {
		t.Fatalf("table rows = %v, want t1 ONGOING", rows)
	}
}

func TestModel_ShowsErrors(t *testing.T) {
	m := newTestModel(100)
	m = enter(t, m, "finish_task ghost")
	m = enter(t, m, "dance now")

	history := strings.Join(m.History(), "\n")
	if !strings.Contains(history, "task not found: ghost") {
		t.Fatalf("history missing lookup error:\n%s", history)
	}
	if !strings.Contains(history, "ignored:") {
		t.Fatalf("history missing malformed notice:\n%s", history)
	}
}

func TestModel_HistoryIsCapped(t *testing.T) {
	m := newTestModel(3)
	for i := 0; i < 5; i++ {
		m = enter(t, m, "report all")
	}

	if got := len(m.History()); got != 3 {
		t.Fatalf("len(History()) = %d, want 3", got)
	}
}

func TestModel_EmptyEnterDoesNothing(t *testing.T) {
	m := newTestModel(10)
	m = enter(t, m, "   ")

	if len(m.History()) != 0 {
		t.Fatalf("History() = %v, want empty", m.History())
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(10)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if got := updated.(Model).View(); !strings.Contains(got, "Shutting down") {
		t.Fatalf("View() after quit = %q", got)
	}

	m.input.SetValue("add_task ")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if updated.(Model).quit {
		t.Fatal("'q' with pending input must not quit")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(10)
	m = enter(t, m, "add_task t1 5")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := updated.(Model).View()

	for _, want := range []string{"Task Tracker", "TODO: 1", "t1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModel_Completion(t *testing.T) {
	m := newTestModel(10)
	if m.completion() != 0 {
		t.Fatalf("completion() = %v, want 0", m.completion())
	}

	for _, line := range []string{
		"add_task a 1", "add_task b 1", "add_employee e",
		"assign_employee a e", "finish_task a",
	} {
		m = enter(t, m, line)
	}
	if m.completion() != 0.5 {
		t.Fatalf("completion() = %v, want 0.5", m.completion())
	}
}
