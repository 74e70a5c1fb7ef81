// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"fmt"

	"recbrowse/cli/internal/credentials"
)

// DBType represents the type of database
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMySQL      DBType = "mysql"
	DBTypeSQLite     DBType = "sqlite"
	DBTypeUnknown    DBType = "unknown"
)

// Resolver is an interface for database-specific connection string building
type Resolver interface {
	// Build returns the connection string understood by the driver
	Build(d credentials.Descriptor) (string, error)

	// URL renders the descriptor as a URL, for display only
	URL(d credentials.Descriptor) string

	// Validate checks if the descriptor is usable for the database type
	Validate(d credentials.Descriptor) error
}

// ValidationError represents a descriptor that cannot be turned into a connection string
type ValidationError struct {
	Reason string
	Hint   string
}

func (e *ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid connection settings: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid connection settings: %s", e.Reason)
}

// NewValidationError creates a new ValidationError
func NewValidationError(reason, hint string) *ValidationError {
	return &ValidationError{
		Reason: reason,
		Hint:   hint,
	}
}
