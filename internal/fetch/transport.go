// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package fetch

import (
	"context"
	"regexp"

	"recbrowse/cli/internal/record"
)

// ResultSet is a fully read query result with per-column type metadata.
type ResultSet struct {
	Columns []record.Column
	Rows    [][]any
}

// Transport is the query capability the orchestrator drives. Implementations
// are called sequentially, never concurrently.
type Transport interface {
	// TableExists reports whether the table is present.
	TableExists(ctx context.Context, table string) (bool, error)
	// CountRows returns the number of rows in the table.
	CountRows(ctx context.Context, table string) (int64, error)
	// QueryAll returns every row and column of the table in the order the store returns them.
	QueryAll(ctx context.Context, table string) (*ResultSet, error)
}

var reTableName = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*\.)?[A-Za-z_][A-Za-z0-9_]*$`)

// ValidTableName reports whether name is a plain identifier, optionally
// schema-qualified, and therefore safe to quote into a query.
func ValidTableName(name string) bool {
	return reTableName.MatchString(name)
}
