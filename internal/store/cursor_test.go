// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import (
	"testing"

	"recbrowse/cli/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people() *Store {
	return New([]record.Record{
		record.New(record.Field{Name: "id", Value: "1"}, record.Field{Name: "name", Value: "Ann"}),
		record.New(record.Field{Name: "id", Value: "2"}, record.Field{Name: "name", Value: "Bo"}),
		record.New(record.Field{Name: "id", Value: "3"}, record.Field{Name: "name", Value: "Cy"}),
	})
}

func currentName(t *testing.T, c *Cursor) string {
	t.Helper()
	rec, ok := c.Current()
	require.True(t, ok)
	name, _ := rec.Get("name")
	return name
}

func TestCursor_StartsAtFirstRecord(t *testing.T) {
	c := NewCursor(people())

	assert.Equal(t, 0, c.Position())
	assert.Equal(t, "Ann", currentName(t, c))
	assert.True(t, c.AtFirst())
	assert.False(t, c.AtLast())
}

func TestCursor_StepPreviousAtZeroIsNoop(t *testing.T) {
	c := NewCursor(people())

	for i := 0; i < 3; i++ {
		c.StepPrevious()
		assert.Equal(t, 0, c.Position())
	}
}

func TestCursor_StepNextStopsAtLast(t *testing.T) {
	c := NewCursor(people())

	c.StepNext()
	assert.Equal(t, "Bo", currentName(t, c))
	c.StepNext()
	assert.Equal(t, "Cy", currentName(t, c))
	assert.True(t, c.AtLast())

	for i := 0; i < 3; i++ {
		c.StepNext()
		assert.Equal(t, 2, c.Position())
	}
}

func TestCursor_ForwardAndBack(t *testing.T) {
	c := NewCursor(people())

	c.StepNext()
	c.StepNext()
	c.StepPrevious()
	assert.Equal(t, 1, c.Position())
	assert.Equal(t, "Bo", currentName(t, c))
}

func TestCursor_EmptyStore(t *testing.T) {
	c := NewCursor(Empty())

	_, ok := c.Current()
	assert.False(t, ok)

	c.StepNext()
	c.StepPrevious()
	c.StepNext()
	assert.Equal(t, 0, c.Position())
	_, ok = c.Current()
	assert.False(t, ok)
	assert.True(t, c.AtFirst())
	assert.True(t, c.AtLast())
}

func TestCursor_SingleRecord(t *testing.T) {
	c := NewCursor(New([]record.Record{record.New(record.Field{Name: "name", Value: "Solo"})}))

	c.StepNext()
	c.StepPrevious()
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, "Solo", currentName(t, c))
}

func TestStore(t *testing.T) {
	s := people()

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(3))
	assert.False(t, s.Has(-1))

	_, ok := s.At(3)
	assert.False(t, ok)

	var nilStore *Store
	assert.Equal(t, 0, nilStore.Len())
	assert.True(t, nilStore.IsEmpty())
	assert.Empty(t, nilStore.Records())
}

func TestStore_CopiesInput(t *testing.T) {
	recs := []record.Record{record.New(record.Field{Name: "name", Value: "Ann"})}
	s := New(recs)

	recs[0] = record.New(record.Field{Name: "name", Value: "Mallory"})
	got, _ := s.At(0)
	name, _ := got.Get("name")
	assert.Equal(t, "Ann", name)

	out := s.Records()
	out[0] = record.Record{}
	got, _ = s.At(0)
	assert.Equal(t, 1, got.Len())
}
