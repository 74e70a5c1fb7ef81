// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package record holds the uniform in-memory row representation and the
// schema-aware mapper that produces it from raw result-set cells.
//
// A Record is an ordered list of (field name, text value) pairs. Order follows
// the source columns and drives display order. Records are immutable: every
// accessor returns copies.
package record

import (
	"unicode"
	"unicode/utf8"
)

// Field is one (name, value) pair of a Record.
type Field struct {
	Name  string
	Value string
}

// Record is one normalized row.
type Record struct {
	fields []Field
}

// New builds a Record from fields. The slice is copied.
func New(fields ...Field) Record {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return Record{fields: cp}
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Field returns the i-th field.
func (r Record) Field(i int) (Field, bool) {
	if i < 0 || i >= len(r.fields) {
		return Field{}, false
	}
	return r.fields[i], true
}

// Fields returns a copy of the fields in column order.
func (r Record) Fields() []Field {
	cp := make([]Field, len(r.fields))
	copy(cp, r.fields)
	return cp
}

// Get returns the value of the first field named name.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Map returns the record as a name → value map. Field order is lost.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		m[f.Name] = f.Value
	}
	return m
}

// Label returns name with its first rune upper-cased, e.g. "first_name" → "First_name".
func Label(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(first)) + name[size:]
}
