// File: cmd/status_printer.go

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// printStatus writes records in the requested format. The table format
// emits one tab-aligned line per record, in the order given.
func printStatus(w io.Writer, records []ConfigurationRecord, format string, header bool) error {
	if format != "table" {
		return renderDocument(w, records, format)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if header {
		fmt.Fprintln(tw, strings.Join(statusColumns, "\t"))
	}
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", cell(r.Autoconnect), cell(r.State), cell(r.Name), r.BytesIn, r.BytesOut)
	}
	return tw.Flush()
}

// cell keeps a value inside its table column. Embedded tabs would otherwise
// start a new column; only the table rendering is affected.
func cell(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
