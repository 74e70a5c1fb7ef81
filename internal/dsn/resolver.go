// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dsn turns a resolved credential descriptor into the connection
// string a specific driver expects, and renders it as a URL for display.
package dsn

import (
	"regexp"
	"strings"

	"recbrowse/cli/internal/credentials"
)

var rePort = regexp.MustCompile(`^\d+$`)

// DetectDBType maps the descriptor's driver name to a database type.
// An empty driver means PostgreSQL.
func DetectDBType(driver string) DBType {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "postgres", "postgresql", "pg", "pgx":
		return DBTypePostgreSQL
	case "mysql", "mariadb":
		return DBTypeMySQL
	case "sqlite", "sqlite3":
		return DBTypeSQLite
	}
	return DBTypeUnknown
}

// ResolverFor returns the resolver for a database type.
func ResolverFor(t DBType) (Resolver, error) {
	switch t {
	case DBTypePostgreSQL:
		return NewPostgreSQLResolver(), nil
	case DBTypeMySQL:
		return NewMySQLResolver(), nil
	case DBTypeSQLite:
		return NewSQLiteResolver(), nil
	}
	return nil, NewValidationError("unknown database driver", "use driver = postgres, mysql or sqlite")
}

// Build detects the database type of d and returns its connection string.
// This is the main entry point used when opening a connection.
func Build(d credentials.Descriptor) (DBType, string, error) {
	t := DetectDBType(d.Driver)
	r, err := ResolverFor(t)
	if err != nil {
		return t, "", err
	}
	conn, err := r.Build(d)
	if err != nil {
		return t, "", err
	}
	return t, conn, nil
}

// URL renders d as a URL for display. Callers must mask it before printing.
func URL(d credentials.Descriptor) string {
	r, err := ResolverFor(DetectDBType(d.Driver))
	if err != nil {
		return ""
	}
	return r.URL(d)
}

// validatePort checks that a non-empty port is numeric.
func validatePort(port string) error {
	if port != "" && !rePort.MatchString(port) {
		return NewValidationError("invalid port number: "+port, "port must be numeric")
	}
	return nil
}
