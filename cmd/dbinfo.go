// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"recbrowse/cli/internal/dsn"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dbinfoCmd represents the dbinfo command for displaying database connection information.
// It shows the resolved connection with the password masked for security.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show the resolved database connection",
	Long: `The dbinfo command reads the credential file and displays the connection it
resolves to, with the password masked. This helps verify which database and
table recbrowse will load without exposing sensitive credentials.

No connection is opened.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(os.Stderr)
		if err != nil {
			return err
		}

		dbType := dsn.DetectDBType(s.desc.Driver)
		details := []string{
			fmt.Sprintf("Driver:   %s", dbType),
			fmt.Sprintf("URL:      %s", dsn.URL(s.desc.WithPassword(""))),
			fmt.Sprintf("Table:    %s", s.table),
			fmt.Sprintf("Timeout:  %s", s.timeout),
		}
		if s.desc.Password == "" {
			details = append(details, "Password: (none)")
		} else {
			details = append(details, "Password: ***")
		}

		if r, err := dsn.ResolverFor(dbType); err == nil {
			if verr := r.Validate(s.desc); verr != nil {
				details = append(details, "", pterm.Warning.Sprint(verr.Error()))
			}
		}

		// Display the connection info
		out := cmd.OutOrStdout()
		box := pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Database Connection")).
			WithPadding(1).
			Sprint(strings.Join(details, "\n"))
		fmt.Fprintln(out, box)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To store a password in the OS keychain, run: recbrowse passwd")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}
