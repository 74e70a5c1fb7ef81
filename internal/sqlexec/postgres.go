// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"context"
	"fmt"

	"recbrowse/cli/internal/fetch"
	"recbrowse/cli/internal/record"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgExecutor runs the load queries against PostgreSQL.
type PgExecutor struct {
	// Pool is limited to one connection
	Pool *pgxpool.Pool
	// types resolves column OIDs to type names
	types *pgtype.Map
	// columns caches DescribeTable results
	columns *columnCache
}

// NewPgExecutor wraps an existing pool.
func NewPgExecutor(pool *pgxpool.Pool) *PgExecutor {
	return &PgExecutor{
		Pool:    pool,
		types:   pgtype.NewMap(),
		columns: newColumnCache(),
	}
}

// OpenPostgres opens a single-connection pool and pings it.
func OpenPostgres(ctx context.Context, connString string) (*PgExecutor, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return NewPgExecutor(pool), nil
}

// Close closes the pool.
func (e *PgExecutor) Close() error {
	e.Pool.Close()
	return nil
}

// TableExists looks the table up in information_schema. An unqualified name
// matches any schema on the search path.
func (e *PgExecutor) TableExists(ctx context.Context, table string) (bool, error) {
	schema, name := parseTableName(table)
	const q = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = $1::text
			  AND (($2::text = '' AND table_schema = ANY (current_schemas(false))) OR table_schema = $2::text)
		)`

	var exists bool
	if err := e.Pool.QueryRow(ctx, q, name, schema).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CountRows runs SELECT COUNT(*) on the table.
func (e *PgExecutor) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	if err := e.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgIdentifier(table)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// QueryAll runs SELECT * on the table and reads every row.
func (e *PgExecutor) QueryAll(ctx context.Context, table string) (*fetch.ResultSet, error) {
	rows, err := e.Pool.Query(ctx, "SELECT * FROM "+pgIdentifier(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	rs := &fetch.ResultSet{Columns: make([]record.Column, len(fds))}
	for i, fd := range fds {
		rs.Columns[i] = record.NewColumn(fd.Name, e.typeName(fd.DataTypeOID))
	}

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		for i, col := range rs.Columns {
			vals[i] = e.normalize(col, fds[i].DataTypeOID, vals[i])
		}
		rs.Rows = append(rs.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

// DescribeTable reads column names and types from information_schema.
func (e *PgExecutor) DescribeTable(ctx context.Context, table string) ([]record.Column, error) {
	return e.columns.get(table, func() ([]record.Column, error) {
		schema, name := parseTableName(table)
		const q = `
			SELECT column_name, udt_name
			FROM information_schema.columns
			WHERE table_name = $1::text
			  AND (($2::text = '' AND table_schema = ANY (current_schemas(false))) OR table_schema = $2::text)
			ORDER BY ordinal_position`

		rows, err := e.Pool.Query(ctx, q, name, schema)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var cols []record.Column
		for rows.Next() {
			var colName, typeName string
			if err := rows.Scan(&colName, &typeName); err != nil {
				return nil, err
			}
			cols = append(cols, record.NewColumn(colName, typeName))
		}
		return cols, rows.Err()
	})
}

// normalize turns pgx-specific decoded values into plain Go values the row
// mapper renders the way psql prints them.
func (e *PgExecutor) normalize(col record.Column, oid uint32, v any) any {
	if n, ok := v.(pgtype.Numeric); ok {
		return numericText(n)
	}
	if col.Type == record.Unknown {
		return e.nativeText(oid, v)
	}
	return v
}

// numericText renders a numeric in plain decimal notation ("12.50"), keeping
// its scale. NULL becomes nil.
func numericText(n pgtype.Numeric) any {
	switch {
	case !n.Valid:
		return nil
	case n.NaN:
		return "NaN"
	case n.InfinityModifier == pgtype.Infinity:
		return "Infinity"
	case n.InfinityModifier == pgtype.NegativeInfinity:
		return "-Infinity"
	}
	b, err := n.MarshalJSON()
	if err != nil {
		return n
	}
	return string(b)
}

// nativeText re-encodes a decoded value (json maps, arrays, ranges) into
// PostgreSQL's text format, so the cell reads as psql would print it. Values
// the type map cannot encode are returned unchanged.
func (e *PgExecutor) nativeText(oid uint32, v any) any {
	if v == nil {
		return nil
	}
	if _, ok := e.types.TypeForOID(oid); !ok {
		return v
	}
	buf, err := e.types.Encode(oid, pgtype.TextFormatCode, v, nil)
	if err != nil || buf == nil {
		return v
	}
	return string(buf)
}

// typeName returns the PostgreSQL type name for a column OID, e.g. "int4".
func (e *PgExecutor) typeName(oid uint32) string {
	if t, ok := e.types.TypeForOID(oid); ok {
		return t.Name
	}
	return fmt.Sprintf("oid:%d", oid)
}

// pgIdentifier quotes a possibly schema-qualified table name.
func pgIdentifier(table string) string {
	schema, name := parseTableName(table)
	if schema == "" {
		return pgx.Identifier{name}.Sanitize()
	}
	return pgx.Identifier{schema, name}.Sanitize()
}
