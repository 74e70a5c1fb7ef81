// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package store keeps the loaded records in memory and provides the cursor
// that the presentation layer navigates with.
package store

import "recbrowse/cli/internal/record"

// Store is an ordered, immutable collection of records in fetch order.
// A nil *Store behaves like an empty one.
type Store struct {
	records []record.Record
}

// New creates a Store holding a copy of records.
func New(records []record.Record) *Store {
	cp := make([]record.Record, len(records))
	copy(cp, records)
	return &Store{records: cp}
}

// Empty returns an empty Store.
func Empty() *Store { return &Store{} }

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// IsEmpty reports whether the store holds no records.
func (s *Store) IsEmpty() bool { return s.Len() == 0 }

// Has reports whether i is a valid index.
func (s *Store) Has(i int) bool { return i >= 0 && i < s.Len() }

// At returns the record at index i.
func (s *Store) At(i int) (record.Record, bool) {
	if !s.Has(i) {
		return record.Record{}, false
	}
	return s.records[i], true
}

// Records returns a copy of all records in fetch order.
func (s *Store) Records() []record.Record {
	cp := make([]record.Record, s.Len())
	if s != nil {
		copy(cp, s.records)
	}
	return cp
}
