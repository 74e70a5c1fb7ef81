// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package view

import (
	"testing"

	"recbrowse/cli/internal/record"
	"recbrowse/cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customers() *store.Session {
	return store.NewSessionWith(store.New([]record.Record{
		record.New(record.Field{Name: "id", Value: "1"}, record.Field{Name: "name", Value: "Ann"}),
		record.New(record.Field{Name: "id", Value: "2"}, record.Field{Name: "name", Value: "Bo"}),
	}))
}

func press(m *Model, k tea.KeyType) {
	m.Update(tea.KeyMsg{Type: k})
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestModel_ShowsFirstRecord(t *testing.T) {
	m := New(customers(), "customers")

	assert.Equal(t, []string{"1", "Ann"}, m.Values())
	assert.Equal(t, 0, m.Focused())

	out := m.View()
	assert.Contains(t, out, "customers")
	assert.Contains(t, out, "Id")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "record 1/2")
}

func TestModel_Navigation(t *testing.T) {
	s := customers()
	m := New(s, "customers")

	press(m, tea.KeyPgDown)
	assert.Equal(t, 1, s.Position())
	assert.Equal(t, []string{"2", "Bo"}, m.Values())
	assert.Contains(t, m.View(), "record 2/2")

	// Next at the last record is a no-op.
	press(m, tea.KeyCtrlN)
	assert.Equal(t, 1, s.Position())

	press(m, tea.KeyCtrlP)
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, []string{"1", "Ann"}, m.Values())

	press(m, tea.KeyPgUp)
	assert.Equal(t, 0, s.Position())
}

func TestModel_EditsAreDiscardedOnNavigation(t *testing.T) {
	s := customers()
	m := New(s, "customers")

	press(m, tea.KeyTab)
	require.Equal(t, 1, m.Focused())
	typeText(m, "x")

	assert.Equal(t, []string{"1", "Annx"}, m.Values())
	assert.True(t, m.Dirty())
	assert.Contains(t, m.View(), "edited, not saved")

	press(m, tea.KeyPgDown)
	press(m, tea.KeyPgUp)

	assert.Equal(t, []string{"1", "Ann"}, m.Values())
	assert.False(t, m.Dirty())
	assert.Equal(t, 1, m.Focused())

	// The stored record is untouched.
	rec, ok := s.Current()
	require.True(t, ok)
	v, _ := rec.Get("name")
	assert.Equal(t, "Ann", v)
}

func TestModel_EditsSurviveBoundaryPress(t *testing.T) {
	m := New(customers(), "customers")

	typeText(m, "9")
	press(m, tea.KeyPgUp)

	assert.Equal(t, []string{"19", "Ann"}, m.Values())
}

func TestModel_LettersDoNotNavigate(t *testing.T) {
	s := customers()
	m := New(s, "customers")

	typeText(m, "n")
	typeText(m, "p")

	assert.Equal(t, 0, s.Position())
	assert.Equal(t, "1np", m.Values()[0])
}

func TestModel_FocusWraps(t *testing.T) {
	m := New(customers(), "customers")

	press(m, tea.KeyShiftTab)
	assert.Equal(t, 1, m.Focused())
	press(m, tea.KeyTab)
	assert.Equal(t, 0, m.Focused())
}

func TestModel_Empty(t *testing.T) {
	m := New(store.NewSession(), "customers")

	assert.Empty(t, m.Values())
	assert.Nil(t, m.Init())

	press(m, tea.KeyPgDown)
	press(m, tea.KeyTab)
	typeText(m, "x")

	out := m.View()
	assert.Contains(t, out, "No records to show.")
	assert.Contains(t, out, "record 0/0")
}

func TestModel_Quit(t *testing.T) {
	m := New(customers(), "customers")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(customers(), "customers")

	short := m.View()
	press(m, tea.KeyF1)
	full := m.View()

	assert.NotContains(t, short, "next field")
	assert.Contains(t, full, "next field")
}
