// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package fetch

import (
	"bytes"
	"context"
	"errors"
	"testing"

	apperrors "recbrowse/cli/internal/errors"
	"recbrowse/cli/internal/logging"
	"recbrowse/cli/internal/record"
	"recbrowse/cli/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records the calls it receives.
type fakeTransport struct {
	exists   bool
	count    int64
	rs       *ResultSet
	existErr error
	countErr error
	queryErr error
	calls    []string
}

func (f *fakeTransport) TableExists(_ context.Context, table string) (bool, error) {
	f.calls = append(f.calls, "exists:"+table)
	return f.exists, f.existErr
}

func (f *fakeTransport) CountRows(_ context.Context, table string) (int64, error) {
	f.calls = append(f.calls, "count:"+table)
	return f.count, f.countErr
}

func (f *fakeTransport) QueryAll(_ context.Context, table string) (*ResultSet, error) {
	f.calls = append(f.calls, "query:"+table)
	return f.rs, f.queryErr
}

func customers() *ResultSet {
	return &ResultSet{
		Columns: []record.Column{record.NewColumn("id", "int4"), record.NewColumn("name", "text")},
		Rows:    [][]any{{int32(1), "Ann"}, {int32(2), "Bo"}},
	}
}

func TestLoadAll(t *testing.T) {
	ft := &fakeTransport{exists: true, count: 2, rs: customers()}
	var stages []Stage

	s, err := New(ft, "customers", WithStageHook(func(st Stage) { stages = append(stages, st) })).LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"exists:customers", "count:customers", "query:customers"}, ft.calls)
	assert.Equal(t, []Stage{StageCheckExistence, StageCountRecords, StageFetchRows, StageMap, StageDone}, stages)
	require.Equal(t, 2, s.Len())
	first, _ := s.At(0)
	second, _ := s.At(1)
	assert.Equal(t, map[string]string{"id": "1", "name": "Ann"}, first.Map())
	assert.Equal(t, map[string]string{"id": "2", "name": "Bo"}, second.Map())
}

func TestLoadAll_AbsentTableSkipsCountAndFetch(t *testing.T) {
	ft := &fakeTransport{exists: false}
	var stages []Stage

	s, err := New(ft, "customers", WithStageHook(func(st Stage) { stages = append(stages, st) })).LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"exists:customers"}, ft.calls)
	assert.Equal(t, []Stage{StageCheckExistence, StageEmpty}, stages)
	assert.True(t, s.IsEmpty())

	c := store.NewCursor(s)
	c.StepNext()
	c.StepPrevious()
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestLoadAll_CountDoesNotGateFetch(t *testing.T) {
	// A stale or wrong count is diagnostic only.
	ft := &fakeTransport{exists: true, count: 0, rs: customers()}

	s, err := New(ft, "customers").LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestLoadAll_PreservesRowOrder(t *testing.T) {
	rs := &ResultSet{Columns: []record.Column{record.NewColumn("n", "int8")}}
	for i := 0; i < 50; i++ {
		rs.Rows = append(rs.Rows, []any{int64(50 - i)})
	}
	ft := &fakeTransport{exists: true, count: 50, rs: rs}

	s, err := New(ft, "numbers").LoadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 50, s.Len())
	for i := 0; i < 50; i++ {
		rec, _ := s.At(i)
		v, _ := rec.Get("n")
		assert.Equal(t, record.Coerce(record.Integer, int64(50-i)), v)
	}
}

func TestLoadAll_EmptyResultSet(t *testing.T) {
	ft := &fakeTransport{exists: true, rs: nil}

	s, err := New(ft, "customers").LoadAll(context.Background())
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestLoadAll_Failures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		transport *fakeTransport
		wantCalls []string
	}{
		{
			name:      "existence check fails",
			transport: &fakeTransport{existErr: boom},
			wantCalls: []string{"exists:customers"},
		},
		{
			name:      "count fails",
			transport: &fakeTransport{exists: true, countErr: boom},
			wantCalls: []string{"exists:customers", "count:customers"},
		},
		{
			name:      "fetch fails",
			transport: &fakeTransport{exists: true, queryErr: boom},
			wantCalls: []string{"exists:customers", "count:customers", "query:customers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.transport, "customers").LoadAll(context.Background())
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, apperrors.Is(err, apperrors.FetchFailed))
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, tt.wantCalls, tt.transport.calls)
		})
	}
}

func TestLoadAll_FailureKeepsSessionState(t *testing.T) {
	sess := store.NewSession()
	require.NoError(t, sess.Load(context.Background(), New(&fakeTransport{exists: true, rs: customers()}, "customers")))

	err := sess.Load(context.Background(), New(&fakeTransport{existErr: errors.New("down")}, "customers"))
	require.Error(t, err)
	assert.Equal(t, 2, sess.Len())
}

func TestLoadAll_InvalidTableIssuesNoQueries(t *testing.T) {
	ft := &fakeTransport{exists: true}

	_, err := New(ft, "customers; DROP TABLE x").LoadAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidTable))
	assert.Empty(t, ft.calls)
}

func TestLoadAll_LogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	ft := &fakeTransport{exists: true, count: 1234, rs: customers()}

	_, err := New(ft, "customers", WithLogger(logging.NewLogger(&buf, "debug"))).LoadAll(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "records in table")
	assert.Contains(t, out, "1,234")
	assert.Contains(t, out, "id:integer, name:text")
}

func TestValidTableName(t *testing.T) {
	valid := []string{"customers", "_t1", "crm.customers", "Kunden"}
	invalid := []string{"", "1abc", "a.b.c", "cust omers", `x"y`, "a;b", ".t", "t."}

	for _, n := range valid {
		assert.True(t, ValidTableName(n), n)
	}
	for _, n := range invalid {
		assert.False(t, ValidTableName(n), n)
	}
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "check_existence", StageCheckExistence.String())
	assert.Equal(t, "empty", StageEmpty.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
