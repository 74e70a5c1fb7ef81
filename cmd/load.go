// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"recbrowse/cli/internal/config"
	"recbrowse/cli/internal/credentials"
	"recbrowse/cli/internal/dsn"
	"recbrowse/cli/internal/fetch"
	"recbrowse/cli/internal/keychain"
	"recbrowse/cli/internal/logging"
	"recbrowse/cli/internal/sqlexec"
	"recbrowse/cli/internal/store"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// settings is everything a command needs before it touches the database.
type settings struct {
	desc    credentials.Descriptor
	table   string
	timeout time.Duration
	logger  *pterm.Logger
}

// resolveSettings loads the app config, applies flag overrides and reads the
// credential file.
func resolveSettings(logOut io.Writer) (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}

	s := settings{
		table:   cfg.Table,
		timeout: cfg.Timeout(),
		logger:  logging.NewLogger(logOut, cfg.LogLevel),
	}
	if t := strings.TrimSpace(tableFlag); t != "" {
		s.table = t
	}
	if timeoutFlag > 0 {
		s.timeout = timeoutFlag
	}

	path, err := cfg.ResolveCredentialsPath(credentialsFlag)
	if err != nil {
		return settings{}, err
	}
	s.logger.Debug("credential file", s.logger.Args("path", path))

	s.desc, err = credentials.Resolve(path)
	if err != nil {
		return settings{}, err
	}

	if keychainFlag && s.desc.Password == "" {
		s.desc = passwordFromKeychain(s.desc, s.logger)
	}
	return s, nil
}

// passwordFromKeychain fills in the stored password. A missing entry or an
// unavailable keychain is logged and the descriptor is returned unchanged.
func passwordFromKeychain(d credentials.Descriptor, logger *pterm.Logger) credentials.Descriptor {
	km, err := keychain.GetManager()
	if err != nil {
		logger.Warn("secure storage is not available", logger.Args("error", err.Error()))
		return d
	}
	pw, err := km.LoadDBPassword(d.KeychainKey())
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			logger.Warn("no password stored in keychain", logger.Args("key", d.KeychainKey()))
		} else {
			logger.Warn("keychain lookup failed", logger.Args("error", err.Error()))
		}
		return d
	}
	logger.Debug("password loaded from keychain", logger.Args("key", d.KeychainKey()))
	return d.WithPassword(pw)
}

// loadSession connects, runs the fetch sequence for the configured table and
// returns a session positioned on the first record. Connecting and loading
// share one deadline. The connection is closed before returning.
// A spinner is drawn only when stdout is a terminal.
func loadSession(ctx context.Context, s settings) (*store.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger := s.logger
	var sp *spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		var flush func()
		logger, flush = holdLogs(s.logger)
		sp = startSpinner("connecting to " + dsn.URL(s.desc.WithPassword("")))
		defer func() {
			sp.Stop()
			flush()
		}()
	}

	exec, err := sqlexec.Open(ctx, s.desc)
	if err != nil {
		return nil, err
	}
	defer exec.Close()

	opts := []fetch.Option{fetch.WithLogger(logger)}
	if sp != nil {
		opts = append(opts, fetch.WithStageHook(func(st fetch.Stage) {
			sp.Update(stageText(st, s.table))
		}))
	}

	session := store.NewSession()
	if err := session.Load(ctx, fetch.New(exec, s.table, opts...)); err != nil {
		return nil, err
	}
	return session, nil
}

// holdLogs returns a copy of l that buffers its output, and a flush func that
// writes the buffered lines to l's writer. It keeps log lines from landing in
// the middle of a spinner redraw.
func holdLogs(l *pterm.Logger) (*pterm.Logger, func()) {
	var buf bytes.Buffer
	held := l.WithWriter(&buf)
	return held, func() {
		if buf.Len() == 0 {
			return
		}
		w := l.Writer
		if w == nil {
			w = os.Stderr
		}
		_, _ = buf.WriteTo(w)
	}
}

func stageText(st fetch.Stage, table string) string {
	switch st {
	case fetch.StageCheckExistence:
		return "looking up " + table
	case fetch.StageCountRecords:
		return "counting records"
	case fetch.StageFetchRows:
		return "loading records"
	case fetch.StageMap:
		return "mapping records"
	}
	return "done"
}
