// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package view

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"recbrowse/cli/internal/record"
	"recbrowse/cli/internal/store"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// RenderTable prints every record as one table row under a header of field
// names, followed by a record count. An empty store prints a notice instead.
func RenderTable(w io.Writer, table string, st *store.Store) error {
	recs := st.Records()
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, pterm.Warning.Sprintf("No records in %s", table))
		return err
	}

	data := pterm.TableData{headers(recs[0])}
	for _, rec := range recs {
		row := make([]string, 0, rec.Len())
		for _, f := range rec.Fields() {
			row = append(row, f.Value)
		}
		data = append(data, row)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s record(s) in %s\n", out, humanize.Comma(int64(len(recs))), table)
	return err
}

// RenderRecord prints the record at index i (0-based) as a labelled box.
func RenderRecord(w io.Writer, table string, st *store.Store, i int) error {
	rec, ok := st.At(i)
	if !ok {
		return fmt.Errorf("record %d out of range (table %s has %d)", i+1, table, st.Len())
	}

	width := 0
	for _, f := range rec.Fields() {
		width = max(width, utf8.RuneCountInString(record.Label(f.Name)))
	}
	lines := make([]string, 0, rec.Len())
	for _, f := range rec.Fields() {
		label := record.Label(f.Name)
		lines = append(lines, fmt.Sprintf("%s%s  %s", pterm.Bold.Sprint(label), strings.Repeat(" ", width-utf8.RuneCountInString(label)), f.Value))
	}

	title := pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("%s · record %d/%d", table, i+1, st.Len())
	box := pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(strings.Join(lines, "\n"))
	_, err := fmt.Fprintln(w, box)
	return err
}

func headers(rec record.Record) []string {
	out := make([]string, 0, rec.Len())
	for _, f := range rec.Fields() {
		out = append(out, f.Name)
	}
	return out
}
