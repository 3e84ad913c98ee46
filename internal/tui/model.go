package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kelsos/tasktracker/internal/command"
	"github.com/kelsos/tasktracker/internal/models"
	"github.com/kelsos/tasktracker/internal/project"
)

const (
	outputHeight = 10
	tableHeight  = 8
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ignoredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	echoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Model is the interactive shell. Every submitted line goes through the same
// interpreter the batch mode uses.
type Model struct {
	interp      *command.Interpreter
	out         *bytes.Buffer
	input       textinput.Model
	tasks       table.Model
	progress    progress.Model
	output      viewport.Model
	lines       []string
	historySize int
	counts      models.StatusCounts
	width       int
	height      int
	quit        bool
}

// NewModel creates a shell over p. Output of interp must go to out.
func NewModel(interp *command.Interpreter, out *bytes.Buffer, prompt string, historySize int) Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "add_task <name> <priority>"
	input.CharLimit = 256
	input.Width = 60
	input.Focus()

	columns := []table.Column{
		{Title: "Task", Width: 20},
		{Title: "Priority", Width: 8},
		{Title: "Status", Width: 8},
		{Title: "Employees", Width: 30},
	}
	tasks := table.New(
		table.WithColumns(columns),
		table.WithHeight(tableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	tasks.SetStyles(styles)

	m := Model{
		interp:      interp,
		out:         out,
		input:       input,
		tasks:       tasks,
		progress:    progress.New(progress.WithDefaultGradient()),
		output:      viewport.New(80, outputHeight),
		historySize: historySize,
		width:       80,
		height:      24,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.handleKeyMsg(msg) {
			m.quit = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			m = m.submit()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m = m.handleWindowSizeMsg(msg)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		if progressModel, ok := progressModel.(progress.Model); ok {
			m.progress = progressModel
		}
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc":
		return true
	case "q":
		return m.input.Value() == ""
	}
	return false
}

func (m Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.progress.Width = max(msg.Width-20, 10)
	m.output.Width = max(msg.Width-4, 20)
	m.input.Width = max(msg.Width-len(m.input.Prompt)-4, 10)
	return m
}

// submit runs the current input line and records what it printed
func (m Model) submit() Model {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m
	}

	m.out.Reset()
	err := m.interp.ExecuteLine(line)

	m.appendLines(echoStyle.Render(m.input.Prompt + line))
	if text := strings.TrimRight(m.out.String(), "\n"); text != "" {
		m.appendLines(strings.Split(text, "\n")...)
	}

	switch {
	case err == nil:
	case errors.Is(err, command.ErrMalformed):
		m.appendLines(ignoredStyle.Render("ignored: " + err.Error()))
	case errors.Is(err, project.ErrNotFound):
		m.appendLines(errorStyle.Render("error: " + errors.Unwrap(err).Error()))
	default:
		m.appendLines(errorStyle.Render("error: " + err.Error()))
	}

	m.refresh()
	return m
}

func (m *Model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if len(m.lines) > m.historySize {
		m.lines = m.lines[len(m.lines)-m.historySize:]
	}
	m.output.SetContent(strings.Join(m.lines, "\n"))
	m.output.GotoBottom()
}

// refresh reloads the task table and counters from the project
func (m *Model) refresh() {
	p := m.interp.Project()
	m.counts = p.ReportAll()

	tasks := p.Tasks()
	rows := make([]table.Row, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, table.Row{
			task.Name,
			strconv.Itoa(task.Priority),
			task.Status.String(),
			strings.Join(task.AssignedEmployees, ", "),
		})
	}
	m.tasks.SetRows(rows)
}

func (m Model) completion() float64 {
	if m.counts.Total() == 0 {
		return 0
	}
	return float64(m.counts.Done) / float64(m.counts.Total())
}

func (m Model) View() string {
	if m.quit {
		return "Shutting down...\n"
	}

	var s strings.Builder

	s.WriteString(headerStyle.Render("Task Tracker"))
	s.WriteString("\n")

	summary := fmt.Sprintf("Tasks: %d | TODO: %d | ONGOING: %d | DONE: %d",
		m.counts.Total(), m.counts.Todo, m.counts.Ongoing, m.counts.Done)
	s.WriteString(summaryStyle.Render(summary))
	s.WriteString("\n")
	s.WriteString(m.progress.ViewAs(m.completion()))
	s.WriteString("\n\n")

	s.WriteString(sectionStyle.Render(m.tasks.View()))
	s.WriteString("\n")
	s.WriteString(sectionStyle.Render(m.output.View()))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	footer := "Enter to run | 'q' on empty input, esc or ctrl+c to quit"
	s.WriteString(footerStyle.Render(footer))

	return s.String()
}

// History returns the output lines currently kept by the shell
func (m Model) History() []string {
	return append([]string(nil), m.lines...)
}
