package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"envreport/internal/logging"
)

// Model represents the report viewer state
type Model struct {
	generate Generator
	logger   *logging.Logger

	showFull    bool
	quitting    bool
	report      string
	generatedAt time.Time

	statusMessage string
}

// NewModel creates a viewer and renders the first report
func NewModel(logger *logging.Logger, generate Generator, showFull bool) Model {
	m := Model{
		generate: generate,
		logger:   logger,
		showFull: showFull,
	}
	m.regenerate()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "s":
		return m.toggleFull(), nil
	case "r":
		return m.refresh(), nil
	}
	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00d7ff"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#87d7af"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff")).MarginTop(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("envreport - Environment Report"))
	b.WriteString("\n")
	b.WriteString(m.report)

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	hints := make([]string, 0, 3)
	for _, binding := range DefaultKeyBindings() {
		hints = append(hints, binding.Label)
	}
	b.WriteString(hintStyle.Render(strings.Join(hints, " | ")))
	b.WriteString("\n")

	return b.String()
}

func (m Model) toggleFull() Model {
	m.showFull = !m.showFull
	m.regenerate()
	if m.showFull {
		m.statusMessage = "Showing nvidia-smi output"
	} else {
		m.statusMessage = "Hiding nvidia-smi output"
	}
	return m
}

func (m Model) refresh() Model {
	m.regenerate()
	m.statusMessage = "Refreshed at " + m.generatedAt.Format("15:04:05")
	return m
}

// regenerate runs the generator and keeps its output
func (m *Model) regenerate() {
	m.report = m.generate(m.showFull)
	m.generatedAt = time.Now()
	m.logger.Debug("tui.report.generated", "Report regenerated", map[string]interface{}{
		"show_full": m.showFull,
		"bytes":     len(m.report),
	})
}

// Run starts the viewer and blocks until the user quits
func Run(logger *logging.Logger, generate Generator, showFull bool) error {
	program := tea.NewProgram(NewModel(logger, generate, showFull))
	_, err := program.Run()
	return err
}
