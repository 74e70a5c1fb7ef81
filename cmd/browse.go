// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"recbrowse/cli/internal/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCmd loads the table and opens the interactive record form.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Step through the records of a table in an interactive form",
	Long: `The browse command loads every record of the table and shows them one at a
time as a form of labelled fields. Fields can be edited, but edits are never
saved: moving to another record restores the stored values.

Keys: pgup/ctrl+p previous, pgdn/ctrl+n next, tab/shift+tab change field,
f1 help, esc quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(os.Stderr)
		if err != nil {
			return err
		}

		session, err := loadSession(cmd.Context(), s)
		if err != nil {
			return err
		}
		defer session.Close()

		p := tea.NewProgram(view.New(session, s.table), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
