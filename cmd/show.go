// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"recbrowse/cli/internal/view"

	"github.com/spf13/cobra"
)

var showRecord int

// showCmd prints the loaded table without any interaction.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the records of a table",
	Long: `The show command loads the table and prints all records as a table with a
header row of column names. With --record N only the N-th record (1-based) is
printed, as a box of labelled fields.

Diagnostics go to stderr, so stdout can be redirected.`,
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

		out := cmd.OutOrStdout()
		if showRecord > 0 {
			return view.RenderRecord(out, s.table, session.Store(), showRecord-1)
		}
		return view.RenderTable(out, s.table, session.Store())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showRecord, "record", "r", 0, "Print only record N (1-based)")
}
