// Package table renders tabular output as aligned plain text, JSON or
// tab-separated values.
//
// It is used by `colorparse --list`, `pomo settings --list` and
// `pomo doctor`.
package table

import (
	"fmt"
	"io"
	"strings"
)

// DisplayOptions controls how results are rendered.
type DisplayOptions struct {
	// JSON outputs results as a JSON array of objects.
	JSON bool
	// Raw outputs results as tab-separated values (for piping).
	Raw bool
	// Footer prints the "(N rows)" line after plain tables.
	Footer bool
}

// Display picks the right output mode based on options, then renders the
// given columns and rows to w.
func Display(w io.Writer, columns []string, rows [][]string, opts DisplayOptions) error {
	if opts.Raw {
		for _, row := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		return nil
	}

	if opts.JSON {
		return PrintJSONResults(w, columns, rows)
	}

	return PrintPlainTable(w, columns, rows, opts.Footer)
}
