// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credentials resolves the key=value credential file into a connection
// descriptor. The file is INI-like: blank lines and [section] headers are
// skipped, every other line is split on its first '=', and the last occurrence
// of a key wins. Lines without '=' are ignored rather than rejected.
package credentials

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	apperrors "recbrowse/cli/internal/errors"
)

// DefaultHost is used when the credential file has no host line.
const DefaultHost = "localhost"

// Recognized keys.
const (
	KeyHost     = "host"
	KeyPort     = "port"
	KeyUser     = "user"
	KeyPassword = "password"
	KeyDatabase = "dbname"
	KeyDriver   = "driver"
)

// Descriptor holds resolved connection parameters.
// It is a value type; copies are independent.
type Descriptor struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Resolve reads the credential file at path.
// A missing file yields a config_not_found error, any other read failure a
// config_unreadable error.
func Resolve(path string) (Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Descriptor{}, apperrors.Wrap(apperrors.ConfigNotFound, "credential file "+path, err)
		}
		return Descriptor{}, apperrors.Wrap(apperrors.ConfigUnreadable, "credential file "+path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return Descriptor{}, apperrors.Wrap(apperrors.ConfigUnreadable, "credential file "+path, err)
	}
	return d, nil
}

// Parse reads key=value lines from r and applies defaults for absent keys.
func Parse(r io.Reader) (Descriptor, error) {
	values := make(map[string]string)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Descriptor{}, err
		}
		parseLine(values, line)
		if err != nil {
			break
		}
	}

	d := Descriptor{
		Driver:   values[KeyDriver],
		Host:     values[KeyHost],
		Port:     values[KeyPort],
		User:     values[KeyUser],
		Password: values[KeyPassword],
		Database: values[KeyDatabase],
	}
	if _, ok := values[KeyHost]; !ok {
		d.Host = DefaultHost
	}
	return d, nil
}

// parseLine records one key=value line. Section headers, blank lines and
// lines without "=" are ignored. Lines have no length limit.
func parseLine(values map[string]string, line string) {
	line = strings.TrimRight(line, "\r\n")
	if strings.HasPrefix(line, "[") || strings.TrimSpace(line) == "" {
		return
	}
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	values[strings.TrimSpace(key)] = strings.TrimSpace(value)
}

// WithPassword returns a copy of d with the password replaced.
func (d Descriptor) WithPassword(password string) Descriptor {
	d.Password = password
	return d
}

// KeychainKey identifies this descriptor's secret in the OS keychain.
func (d Descriptor) KeychainKey() string {
	return d.User + "@" + d.Host + "/" + d.Database
}
