// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColumnType(t *testing.T) {
	tests := []struct {
		name string
		want ColumnType
	}{
		{"int4", Integer},
		{"INT8", Integer},
		{"INTEGER", Integer},
		{"bigint", Integer},
		{"UNSIGNED BIGINT", Integer},
		{"int(11) unsigned", Integer},
		{"text", Text},
		{"VARCHAR(255)", Text},
		{"character varying", Text},
		{"bpchar", Text},
		{"bool", Boolean},
		{"float8", Float},
		{"NUMERIC(10,2)", Float},
		{"timestamptz", Timestamp},
		{"DATETIME", Timestamp},
		{"date", Date},
		{"bytea", Bytes},
		{"BLOB", Bytes},
		{"uuid", UUID},
		{"jsonb", Unknown},
		{"_int4", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColumnType(tt.name))
		})
	}
}

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "integer", Integer.String())
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "unknown", ColumnType(42).String())
}

func TestNewColumn(t *testing.T) {
	c := NewColumn("email", "citext")
	assert.Equal(t, Column{Name: "email", Type: Text, TypeName: "citext"}, c)
}

func TestRecord_IsImmutable(t *testing.T) {
	fields := []Field{{Name: "id", Value: "1"}}
	rec := New(fields...)

	fields[0].Value = "changed"
	assert.Equal(t, "1", rec.Fields()[0].Value)

	out := rec.Fields()
	out[0].Value = "changed again"
	v, ok := rec.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestRecord_Field(t *testing.T) {
	rec := New(Field{Name: "id", Value: "1"}, Field{Name: "name", Value: "Ann"})

	f, ok := rec.Field(1)
	assert.True(t, ok)
	assert.Equal(t, Field{Name: "name", Value: "Ann"}, f)

	_, ok = rec.Field(2)
	assert.False(t, ok)
	_, ok = rec.Field(-1)
	assert.False(t, ok)
	_, ok = rec.Get("missing")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"name", "Name"},
		{"first_name", "First_name"},
		{"ID", "ID"},
		{"ämter", "Ämter"},
		{"1st", "1st"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.in))
		})
	}
}
