// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"net"
	"net/url"
	"strings"

	"recbrowse/cli/internal/credentials"
)

// PostgreSQLResolver builds libpq keyword/value connection strings
type PostgreSQLResolver struct{}

// NewPostgreSQLResolver creates a new PostgreSQL resolver
func NewPostgreSQLResolver() *PostgreSQLResolver {
	return &PostgreSQLResolver{}
}

// Build returns "host=... port=... user=... password=... dbname=...".
// Empty optional fields are omitted so the driver applies its own defaults.
func (r *PostgreSQLResolver) Build(d credentials.Descriptor) (string, error) {
	if err := r.Validate(d); err != nil {
		return "", err
	}

	pairs := []string{"host=" + quoteValue(d.Host)}
	if d.Port != "" {
		pairs = append(pairs, "port="+d.Port)
	}
	if d.User != "" {
		pairs = append(pairs, "user="+quoteValue(d.User))
	}
	if d.Password != "" {
		pairs = append(pairs, "password="+quoteValue(d.Password))
	}
	if d.Database != "" {
		pairs = append(pairs, "dbname="+quoteValue(d.Database))
	}
	return strings.Join(pairs, " "), nil
}

// URL renders the descriptor in postgresql:// form
func (r *PostgreSQLResolver) URL(d credentials.Descriptor) string {
	u := url.URL{Scheme: "postgresql", Host: urlHost(d.Host, d.Port), Path: "/" + d.Database}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}
	return u.String()
}

// Validate checks if the descriptor is valid for PostgreSQL
func (r *PostgreSQLResolver) Validate(d credentials.Descriptor) error {
	if strings.TrimSpace(d.Host) == "" {
		return NewValidationError("empty host", "set host = <server> in the credential file")
	}
	return validatePort(d.Port)
}

// quoteValue quotes a keyword/value connection string value when it is empty
// or contains whitespace, a quote or a backslash.
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n'\\") {
		return v
	}
	escaped := strings.ReplaceAll(v, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return "'" + escaped + "'"
}

// urlHost joins host and an optional port, bracketing IPv6 literals.
func urlHost(host, port string) string {
	if port != "" {
		return net.JoinHostPort(host, port)
	}
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}
	return host
}
