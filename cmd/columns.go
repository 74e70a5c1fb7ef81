// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"

	apperrors "recbrowse/cli/internal/errors"
	"recbrowse/cli/internal/fetch"
	"recbrowse/cli/internal/record"
	"recbrowse/cli/internal/sqlexec"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// columnsCmd prints the table's columns and how each one is rendered.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns of a table and their detected types",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(os.Stderr)
		if err != nil {
			return err
		}

		cols, err := describeTable(cmd.Context(), s)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(cols) == 0 {
			fmt.Fprintln(out, pterm.Warning.Sprintf("Table %s has no columns or does not exist", s.table))
			return nil
		}

		data := pterm.TableData{{"column", "database type", "rendered as"}}
		for _, c := range cols {
			data = append(data, []string{c.Name, c.TypeName, c.Type.String()})
		}
		rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)
		return nil
	},
}

func describeTable(ctx context.Context, s settings) ([]record.Column, error) {
	if !fetch.ValidTableName(s.table) {
		return nil, apperrors.New(apperrors.InvalidTable, "table name "+s.table)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exec, err := sqlexec.Open(ctx, s.desc)
	if err != nil {
		return nil, err
	}
	defer exec.Close()

	cols, err := exec.DescribeTable(ctx, s.table)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.FetchFailed, "describe "+s.table, err)
	}
	return cols, nil
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
