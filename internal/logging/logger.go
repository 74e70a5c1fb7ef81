// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// VerboseEnv forces debug logging when set to "1".
const VerboseEnv = "RECBROWSE_VERBOSE"

// ParseLevel maps a config level name to a pterm log level. Unknown names mean info.
func ParseLevel(name string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled
	}
	return pterm.LogLevelInfo
}

// NewLogger returns a structured logger writing to w at the named level.
// RECBROWSE_VERBOSE=1 overrides the level with debug.
func NewLogger(w io.Writer, level string) *pterm.Logger {
	lvl := ParseLevel(level)
	if os.Getenv(VerboseEnv) == "1" {
		lvl = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithWriter(w).WithLevel(lvl)
}

// Discard returns a logger that prints nothing.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)
}
