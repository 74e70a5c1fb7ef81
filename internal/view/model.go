// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package view renders loaded records. Model is the interactive bubbletea form
// used by `recbrowse browse`; the pterm renderers back `recbrowse show`.
package view

import (
	"fmt"
	"strings"

	"recbrowse/cli/internal/record"
	"recbrowse/cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the record form. It shows one labelled text input per field of the
// current record. Typed text is scratch only: it is never written back and is
// replaced by the stored values whenever the cursor moves.
type Model struct {
	session *store.Session
	title   string

	current record.Record
	labels  []string
	inputs  []textinput.Model
	focus   int

	keys  KeyMap
	help  help.Model
	width int
}

// New creates a form over the session's current record.
func New(session *store.Session, title string) *Model {
	m := &Model{
		session: session,
		title:   title,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	if rec, ok := session.Current(); ok {
		m.show(rec)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Previous):
			return m, m.previous()
		case key.Matches(msg, m.keys.Next):
			return m, m.next()
		case key.Matches(msg, m.keys.NextField):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.moveFocus(-1)
		}
	}

	return m, m.updateFocused(msg)
}

// previous and next are no-ops at the boundaries, so scratch edits survive a
// press that cannot move.
func (m *Model) previous() tea.Cmd {
	if !m.session.CanPrevious() {
		return nil
	}
	rec, ok := m.session.Previous()
	if !ok {
		return nil
	}
	return m.show(rec)
}

func (m *Model) next() tea.Cmd {
	if !m.session.CanNext() {
		return nil
	}
	rec, ok := m.session.Next()
	if !ok {
		return nil
	}
	return m.show(rec)
}

// show rebuilds the inputs from rec, discarding any edits. Focus stays on the
// same field index when the new record has it.
func (m *Model) show(rec record.Record) tea.Cmd {
	fields := rec.Fields()
	m.current = rec
	m.labels = make([]string, len(fields))
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.SetValue(f.Value)
		m.labels[i] = record.Label(f.Name)
		m.inputs[i] = in
	}
	if m.focus >= len(m.inputs) {
		m.focus = 0
	}
	if len(m.inputs) == 0 {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.inputs)
	if n == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.inputs[m.focus].Focus()
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// Values returns the text currently shown in each input, in field order.
func (m *Model) Values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

// Dirty reports whether any input differs from the stored record.
func (m *Model) Dirty() bool {
	for i, in := range m.inputs {
		f, ok := m.current.Field(i)
		if !ok || in.Value() != f.Value {
			return true
		}
	}
	return false
}

// Focused returns the index of the focused field.
func (m *Model) Focused() int { return m.focus }

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	if len(m.inputs) == 0 {
		b.WriteString(emptyStyle.Render("No records to show."))
		b.WriteString("\n")
	} else {
		width := 0
		for _, l := range m.labels {
			width = max(width, lipgloss.Width(l))
		}
		for i, in := range m.inputs {
			style := labelStyle
			if i == m.focus {
				style = focusedLabelStyle
			}
			label := style.Width(width).Render(m.labels[i])
			b.WriteString(label + "  " + in.View() + "\n")
		}
	}

	b.WriteString(footerStyle.Render(m.footer()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) footer() string {
	n := m.session.Len()
	pos := 0
	if n > 0 {
		pos = m.session.Position() + 1
	}

	prev := disabledStyle.Render("‹ previous")
	if m.session.CanPrevious() {
		prev = enabledStyle.Render("‹ previous")
	}
	next := disabledStyle.Render("next ›")
	if m.session.CanNext() {
		next = enabledStyle.Render("next ›")
	}

	line := fmt.Sprintf("%s  record %d/%d  %s", prev, pos, n, next)
	if m.Dirty() {
		line += "  " + dirtyStyle.Render("edited, not saved")
	}
	return line
}
