// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"net"
	"net/url"
	"strings"

	"recbrowse/cli/internal/credentials"

	"github.com/go-sql-driver/mysql"
)

const defaultMySQLPort = "3306"

// MySQLResolver builds go-sql-driver/mysql DSNs
type MySQLResolver struct{}

// NewMySQLResolver creates a new MySQL resolver
func NewMySQLResolver() *MySQLResolver {
	return &MySQLResolver{}
}

// Build returns "user:password@tcp(host:port)/dbname"
func (r *MySQLResolver) Build(d credentials.Descriptor) (string, error) {
	if err := r.Validate(d); err != nil {
		return "", err
	}

	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, mysqlPort(d))
	cfg.DBName = d.Database
	return cfg.FormatDSN(), nil
}

// URL renders the descriptor in mysql:// form
func (r *MySQLResolver) URL(d credentials.Descriptor) string {
	u := url.URL{Scheme: "mysql", Host: net.JoinHostPort(d.Host, mysqlPort(d)), Path: "/" + d.Database}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}
	return u.String()
}

// Validate checks if the descriptor is valid for MySQL
func (r *MySQLResolver) Validate(d credentials.Descriptor) error {
	if strings.TrimSpace(d.Host) == "" {
		return NewValidationError("empty host", "set host = <server> in the credential file")
	}
	return validatePort(d.Port)
}

func mysqlPort(d credentials.Descriptor) string {
	if d.Port == "" {
		return defaultMySQLPort
	}
	return d.Port
}
