// ============================================================================
// eiya - Pattern Based Date Engine
// ============================================================================
//
// Package:     playground
// Description: Bubbletea model that formats the current time and parses a
//              sample text with a pattern as it is typed
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package playground

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Engine formats and parses instants; both the local service and the
// remote client satisfy it
type Engine interface {
	Format(ctx context.Context, t time.Time, pattern, locale string) (string, error)
	Parse(ctx context.Context, text, pattern, locale string) (time.Time, error)
}

// tickMsg refreshes the formatted current time
type tickMsg time.Time

const (
	fieldPattern = iota
	fieldInput
	fieldCount
)

// Model is the main Bubbletea model for the playground
type Model struct {
	engine Engine
	locale string
	now    func() time.Time

	inputs  [fieldCount]textinput.Model
	focus   int
	current time.Time

	formatted string
	formatErr error
	parsed    time.Time
	parseErr  error

	width int
}

// Config holds playground configuration
type Config struct {
	Engine  Engine
	Locale  string
	Pattern string
	// Now supplies the instant that is formatted; nil means time.Now
	Now func() time.Time
}

// New creates a new playground model
func New(cfg Config) Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Pattern == "" {
		cfg.Pattern = "yyyy/MM/dd HH:mm:ss"
	}

	pattern := textinput.New()
	pattern.Placeholder = "yyyy/MM/dd HH:mm:ss"
	pattern.CharLimit = 128
	pattern.SetValue(cfg.Pattern)
	pattern.Focus()

	input := textinput.New()
	input.Placeholder = "text to parse"
	input.CharLimit = 128

	m := Model{
		engine:  cfg.Engine,
		locale:  cfg.Locale,
		now:     cfg.Now,
		inputs:  [fieldCount]textinput.Model{pattern, input},
		current: cfg.Now(),
	}
	m.evaluate()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyEnter, tea.KeyUp, tea.KeyDown:
			m.inputs[m.focus].Blur()
			if msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp {
				m.focus = (m.focus + fieldCount - 1) % fieldCount
			} else {
				m.focus = (m.focus + 1) % fieldCount
			}
			return m, m.inputs[m.focus].Focus()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.current = m.now()
		m.evaluate()
		return m, tick()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.evaluate()
	return m, cmd
}

// evaluate formats the current time and parses the sample text
func (m *Model) evaluate() {
	pattern := m.inputs[fieldPattern].Value()
	ctx := context.Background()

	m.formatted, m.formatErr = m.engine.Format(ctx, m.current, pattern, m.locale)

	m.parsed, m.parseErr = time.Time{}, nil
	if text := m.inputs[fieldInput].Value(); text != "" {
		m.parsed, m.parseErr = m.engine.Parse(ctx, text, pattern, m.locale)
	}
}

// Pattern returns the pattern being edited
func (m Model) Pattern() string {
	return m.inputs[fieldPattern].Value()
}

// Formatted returns the current time rendered with the pattern
func (m Model) Formatted() (string, error) {
	return m.formatted, m.formatErr
}

// Parsed returns the result of parsing the sample text
func (m Model) Parsed() (time.Time, error) {
	return m.parsed, m.parseErr
}

// View renders the playground
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render("eiya playground"))
	if m.locale != "" {
		b.WriteString(SubHeaderStyle.Render("  locale " + m.locale))
	}
	b.WriteString("\n\n")

	labels := [fieldCount]string{"pattern", "parse"}
	rows := make([]string, 0, fieldCount)
	for i := range m.inputs {
		label := LabelStyle.Render(labels[i])
		if i == m.focus {
			label = FocusedLabelStyle.Render(labels[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, m.inputs[i].View()))
	}
	b.WriteString(PanelStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("now"))
	if m.formatErr != nil {
		b.WriteString(ErrorStyle.Render(m.formatErr.Error()))
	} else {
		b.WriteString(ResultStyle.Render(m.formatted))
	}
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("parsed"))
	switch {
	case m.parseErr != nil:
		b.WriteString(ErrorStyle.Render(m.parseErr.Error()))
	case !m.parsed.IsZero():
		b.WriteString(ResultStyle.Render(m.parsed.Format("2006-01-02 15:04:05.000 Mon MST")))
	default:
		b.WriteString(HelpStyle.Render("-"))
	}
	b.WriteString("\n\n")

	b.WriteString(HelpStyle.Render("tab switch field • esc quit"))
	return b.String()
}

// Run starts the playground program
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
