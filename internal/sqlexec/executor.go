// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqlexec implements the fetch transport over real database drivers:
// PostgreSQL through a single-connection pgx pool, MySQL and SQLite through
// database/sql. Every executor holds exactly one open connection, matching the
// sequential, one-query-at-a-time load sequence.
package sqlexec

import (
	"context"
	"fmt"

	"recbrowse/cli/internal/credentials"
	"recbrowse/cli/internal/dsn"
	apperrors "recbrowse/cli/internal/errors"
	"recbrowse/cli/internal/fetch"
	"recbrowse/cli/internal/record"
)

// Executor is a transport with a lifecycle and column introspection.
type Executor interface {
	fetch.Transport
	// DescribeTable lists the table's columns in ordinal order.
	DescribeTable(ctx context.Context, table string) ([]record.Column, error)
	// Close releases the connection.
	Close() error
}

// Open connects to the database described by d and verifies the connection.
// Any failure is reported as connection_failed.
func Open(ctx context.Context, d credentials.Descriptor) (Executor, error) {
	dbType, connString, err := dsn.Build(d)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ConnectionFailed, "build connection settings", err)
	}

	var exec Executor
	switch dbType {
	case dsn.DBTypePostgreSQL:
		exec, err = OpenPostgres(ctx, connString)
	case dsn.DBTypeMySQL, dsn.DBTypeSQLite:
		exec, err = OpenSQL(ctx, dbType, connString)
	default:
		err = fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ConnectionFailed, "connect to "+dsn.URL(d), err)
	}
	return exec, nil
}
