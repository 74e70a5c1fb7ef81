// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for recbrowse.
// It implements subcommands for browsing, printing and inspecting the records
// of a database table using the Cobra CLI framework, with pterm output and a
// bubbletea form for interactive browsing.
package cmd

import (
	"fmt"
	"os"
	"time"

	"recbrowse/cli/internal/logging"

	"github.com/spf13/cobra"
)

// Flags shared by every command that talks to the database.
var (
	credentialsFlag string
	tableFlag       string
	timeoutFlag     time.Duration
	verboseFlag     bool
	keychainFlag    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "recbrowse",
	Short: "Browse the records of a database table",
	Long: `recbrowse connects to the database named in a credential file, discovers the
shape of a table at runtime and lets you step through its records one at a time.

Supported databases: PostgreSQL (default), MySQL and SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose mode for all modules if --verbose is set
		if verboseFlag {
			os.Setenv(logging.VerboseEnv, "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and prints a friendly, masked error on failure.
func Execute() {
	if c, err := rootCmd.ExecuteC(); err != nil {
		fmt.Fprintln(os.Stderr, logging.FormatError(errorTitle(c), err))
		os.Exit(1)
	}
}

// errorTitle names what the failed command was doing.
func errorTitle(c *cobra.Command) string {
	if c == nil || c == rootCmd {
		return logging.DefaultErrorTitle
	}
	switch c {
	case browseCmd, showCmd:
		return "Could not load records"
	case columnsCmd:
		return "Could not describe table"
	}
	return c.CommandPath() + " failed"
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&credentialsFlag, "credentials", "c", "", "Path to the credential file (default $XDG_CONFIG_HOME/recbrowse/credentials.ini)")
	pf.StringVarP(&tableFlag, "table", "t", "", "Table to load (default from config, else customers)")
	pf.DurationVar(&timeoutFlag, "timeout", 0, "Upper bound for connecting and loading (default from config, else 30s)")
	pf.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug diagnostics")
	pf.BoolVar(&keychainFlag, "keychain", false, "Use the password stored with 'recbrowse passwd' when the credential file has none")
}
