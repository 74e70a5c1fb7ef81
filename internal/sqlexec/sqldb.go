// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"recbrowse/cli/internal/dsn"
	"recbrowse/cli/internal/fetch"
	"recbrowse/cli/internal/record"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// SQLExecutor runs the load queries through database/sql for MySQL and SQLite.
type SQLExecutor struct {
	DB      *sql.DB
	dialect dsn.DBType
	columns *columnCache
}

// NewSQLExecutor wraps an open handle. The handle is limited to one connection.
func NewSQLExecutor(db *sql.DB, dialect dsn.DBType) *SQLExecutor {
	db.SetMaxOpenConns(1)
	return &SQLExecutor{DB: db, dialect: dialect, columns: newColumnCache()}
}

// OpenSQL opens and pings a MySQL or SQLite database.
func OpenSQL(ctx context.Context, dialect dsn.DBType, connString string) (*SQLExecutor, error) {
	var driverName string
	switch dialect {
	case dsn.DBTypeMySQL:
		driverName = "mysql"
	case dsn.DBTypeSQLite:
		driverName = "sqlite"
	default:
		return nil, fmt.Errorf("database/sql executor does not support %q", dialect)
	}

	db, err := sql.Open(driverName, connString)
	if err != nil {
		return nil, err
	}
	exec := NewSQLExecutor(db, dialect)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return exec, nil
}

// Close closes the handle.
func (e *SQLExecutor) Close() error { return e.DB.Close() }

// TableExists checks information_schema (MySQL) or sqlite_master (SQLite).
func (e *SQLExecutor) TableExists(ctx context.Context, table string) (bool, error) {
	schema, name := parseTableName(table)

	var q string
	var args []any
	switch e.dialect {
	case dsn.DBTypeSQLite:
		master := "sqlite_master"
		if schema != "" {
			master = e.quote(schema) + ".sqlite_master"
		}
		q = "SELECT COUNT(*) FROM " + master + " WHERE type IN ('table', 'view') AND name = ?"
		args = []any{name}
	default:
		if schema == "" {
			q = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
			args = []any{name}
		} else {
			q = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
			args = []any{schema, name}
		}
	}

	var n int64
	if err := e.DB.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountRows runs SELECT COUNT(*) on the table.
func (e *SQLExecutor) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	if err := e.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+e.quote(table)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// QueryAll runs SELECT * on the table and reads every row.
func (e *SQLExecutor) QueryAll(ctx context.Context, table string) (*fetch.ResultSet, error) {
	rows, err := e.DB.QueryContext(ctx, "SELECT * FROM "+e.quote(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	rs := &fetch.ResultSet{Columns: make([]record.Column, len(types))}
	for i, ct := range types {
		rs.Columns[i] = record.NewColumn(ct.Name(), ct.DatabaseTypeName())
	}

	for rows.Next() {
		vals := make([]any, len(types))
		ptrs := make([]any, len(types))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rs.Rows = append(rs.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

// DescribeTable lists the table's columns from information_schema (MySQL)
// or pragma_table_info (SQLite).
func (e *SQLExecutor) DescribeTable(ctx context.Context, table string) ([]record.Column, error) {
	return e.columns.get(table, func() ([]record.Column, error) {
		schema, name := parseTableName(table)

		var q string
		var args []any
		switch e.dialect {
		case dsn.DBTypeSQLite:
			if schema == "" {
				q = "SELECT name, type FROM pragma_table_info(?) ORDER BY cid"
				args = []any{name}
			} else {
				q = "SELECT name, type FROM pragma_table_info(?, ?) ORDER BY cid"
				args = []any{name, schema}
			}
		default:
			if schema == "" {
				q = "SELECT column_name, data_type FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position"
				args = []any{name}
			} else {
				q = "SELECT column_name, data_type FROM information_schema.columns WHERE table_schema = ? AND table_name = ? ORDER BY ordinal_position"
				args = []any{schema, name}
			}
		}

		rows, err := e.DB.QueryContext(ctx, q, args...)
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

// quote quotes a possibly schema-qualified identifier for the dialect.
// Names are validated by the orchestrator before they get here.
func (e *SQLExecutor) quote(ident string) string {
	q := `"`
	if e.dialect == dsn.DBTypeMySQL {
		q = "`"
	}
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		parts[i] = q + strings.ReplaceAll(p, q, q+q) + q
	}
	return strings.Join(parts, ".")
}
