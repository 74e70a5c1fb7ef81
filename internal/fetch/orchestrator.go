// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package fetch loads one table into a record store.
//
// The load is a linear sequence with no retries:
//
//	CheckExistence → CountRecords → FetchRows → Map → Done
//
// A missing table ends the sequence in Empty, which is not an error. Any
// transport failure aborts with a fetch_failed error and nothing is returned,
// so the caller's previous store stays in place.
package fetch

import (
	"context"
	"strings"

	apperrors "recbrowse/cli/internal/errors"
	"recbrowse/cli/internal/logging"
	"recbrowse/cli/internal/record"
	"recbrowse/cli/internal/store"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// Stage is a step of the load sequence.
type Stage int

const (
	StageCheckExistence Stage = iota
	StageCountRecords
	StageFetchRows
	StageMap
	StageDone
	StageEmpty
)

func (s Stage) String() string {
	switch s {
	case StageCheckExistence:
		return "check_existence"
	case StageCountRecords:
		return "count_records"
	case StageFetchRows:
		return "fetch_rows"
	case StageMap:
		return "map"
	case StageDone:
		return "done"
	case StageEmpty:
		return "empty"
	}
	return "unknown"
}

// Orchestrator drives a Transport through the load sequence for one table.
type Orchestrator struct {
	transport Transport
	table     string
	logger    *pterm.Logger
	onStage   func(Stage)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l *pterm.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStageHook registers fn to be called on entering each stage.
func WithStageHook(fn func(Stage)) Option {
	return func(o *Orchestrator) { o.onStage = fn }
}

// New creates an orchestrator for table.
func New(t Transport, table string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		transport: t,
		table:     table,
		logger:    logging.Discard(),
		onStage:   func(Stage) {},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Table returns the table name the orchestrator loads.
func (o *Orchestrator) Table() string { return o.table }

// LoadAll runs the sequence and returns the populated store. It issues at
// most one query at a time and stops at the first failure.
func (o *Orchestrator) LoadAll(ctx context.Context) (*store.Store, error) {
	if !ValidTableName(o.table) {
		return nil, apperrors.New(apperrors.InvalidTable, "table name "+o.table)
	}

	o.onStage(StageCheckExistence)
	exists, err := o.transport.TableExists(ctx, o.table)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.FetchFailed, "check table "+o.table, err)
	}
	o.logger.Info("table lookup", o.logger.Args("table", o.table, "exists", exists))
	if !exists {
		o.onStage(StageEmpty)
		o.logger.Warn("table does not exist", o.logger.Args("table", o.table))
		return store.Empty(), nil
	}

	o.onStage(StageCountRecords)
	count, err := o.transport.CountRows(ctx, o.table)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.FetchFailed, "count rows of "+o.table, err)
	}
	o.logger.Info("records in table", o.logger.Args("table", o.table, "count", humanize.Comma(count)))

	o.onStage(StageFetchRows)
	rs, err := o.transport.QueryAll(ctx, o.table)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.FetchFailed, "select from "+o.table, err)
	}
	if rs == nil {
		rs = &ResultSet{}
	}
	o.logger.Debug("table headers", o.logger.Args("columns", describeColumns(rs.Columns)))

	o.onStage(StageMap)
	records := record.MapRows(rs.Rows, rs.Columns)

	o.onStage(StageDone)
	o.logger.Debug("records mapped", o.logger.Args("table", o.table, "records", len(records)))
	return store.New(records), nil
}

func describeColumns(cols []record.Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.Name + ":" + c.Type.String()
	}
	return strings.Join(parts, ", ")
}
