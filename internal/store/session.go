// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import (
	"context"
	"sync"

	"recbrowse/cli/internal/record"
)

// Loader produces a fully populated Store, e.g. the fetch orchestrator.
type Loader interface {
	LoadAll(ctx context.Context) (*Store, error)
}

// Session owns the record store and the cursor for one browsing session.
// All methods are safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	store  *Store
	cursor *Cursor
}

// NewSession creates a session over an empty store.
func NewSession() *Session {
	return NewSessionWith(Empty())
}

// NewSessionWith creates a session over s with the cursor at position 0.
func NewSessionWith(s *Store) *Session {
	if s == nil {
		s = Empty()
	}
	return &Session{store: s, cursor: NewCursor(s)}
}

// Load replaces the store with the loader's result and resets the cursor.
// On error the previous store and cursor position are kept.
func (s *Session) Load(ctx context.Context, l Loader) error {
	loaded, err := l.LoadAll(ctx)
	if err != nil {
		return err
	}
	if loaded == nil {
		loaded = Empty()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = loaded
	s.cursor = NewCursor(loaded)
	return nil
}

// Current returns the record under the cursor.
func (s *Session) Current() (record.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Current()
}

// Previous steps back and returns the updated current record.
func (s *Session) Previous() (record.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.StepPrevious()
	return s.cursor.Current()
}

// Next steps forward and returns the updated current record.
func (s *Session) Next() (record.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.StepNext()
	return s.cursor.Current()
}

// Position returns the cursor index.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Position()
}

// Len returns the number of loaded records.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// CanPrevious and CanNext report which navigation affordances are live.
func (s *Session) CanPrevious() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.cursor.AtFirst()
}

func (s *Session) CanNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.cursor.AtLast()
}

// Store returns the current store.
func (s *Session) Store() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store
}

// Close drops the loaded records. The session stays usable and empty.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = Empty()
	s.cursor = NewCursor(s.store)
}
