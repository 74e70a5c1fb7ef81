// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import "recbrowse/cli/internal/record"

// Cursor is a position over a Store. It moves one record at a time and never
// leaves the valid range; steps past either end are no-ops.
// A Cursor is not safe for concurrent use; Session serializes access.
type Cursor struct {
	store    *Store
	position int
}

// NewCursor creates a cursor at position 0.
func NewCursor(s *Store) *Cursor {
	return &Cursor{store: s}
}

// Position returns the current index. It is 0 for an empty store.
func (c *Cursor) Position() int { return c.position }

// Current returns the record under the cursor, or false if the store is empty.
func (c *Cursor) Current() (record.Record, bool) {
	return c.store.At(c.position)
}

// AtFirst reports whether StepPrevious would be a no-op.
func (c *Cursor) AtFirst() bool { return c.position == 0 }

// AtLast reports whether StepNext would be a no-op.
func (c *Cursor) AtLast() bool { return c.store.IsEmpty() || c.position == c.store.Len()-1 }

// StepPrevious moves back one record unless already at the first.
func (c *Cursor) StepPrevious() {
	if c.AtFirst() {
		return
	}
	c.position--
}

// StepNext moves forward one record unless already at the last.
func (c *Cursor) StepNext() {
	if c.AtLast() {
		return
	}
	c.position++
}
