// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"strings"

	"recbrowse/cli/internal/credentials"
)

// SQLiteResolver treats dbname as the database file path. Host, port, user
// and password are ignored.
type SQLiteResolver struct{}

// NewSQLiteResolver creates a new SQLite resolver
func NewSQLiteResolver() *SQLiteResolver {
	return &SQLiteResolver{}
}

// Build returns the database path
func (r *SQLiteResolver) Build(d credentials.Descriptor) (string, error) {
	if err := r.Validate(d); err != nil {
		return "", err
	}
	return d.Database, nil
}

// URL renders the descriptor in sqlite:// form
func (r *SQLiteResolver) URL(d credentials.Descriptor) string {
	return "sqlite://" + d.Database
}

// Validate checks that a database path is present
func (r *SQLiteResolver) Validate(d credentials.Descriptor) error {
	if strings.TrimSpace(d.Database) == "" {
		return NewValidationError("missing database path", "set dbname = <file path> in the credential file")
	}
	return nil
}
