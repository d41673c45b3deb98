package table

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSONResults outputs results as a JSON array of objects. Empty cells
// become null.
func PrintJSONResults(w io.Writer, colNames []string, rows [][]string) error {
	results := make([]map[string]any, len(rows))

	for i, row := range rows {
		obj := make(map[string]any)
		for j, colName := range colNames {
			if j < len(row) && row[j] != "" {
				obj[colName] = row[j]
			} else {
				obj[colName] = nil
			}
		}
		results[i] = obj
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// PrintPlainTable prints an aligned table. Widths are measured on the
// rendered text, so styled cells line up.
func PrintPlainTable(w io.Writer, colNames []string, rows [][]string, footer bool) error {
	bw := bufio.NewWriter(w)

	if len(colNames) == 0 {
		fmt.Fprintln(bw, "(0 rows)")
		return bw.Flush()
	}

	// Calculate column widths based on actual content (no truncation)
	colWidths := make([]int, len(colNames))
	for i, name := range colNames {
		colWidths[i] = lipgloss.Width(name)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(colWidths) && lipgloss.Width(val) > colWidths[i] {
				colWidths[i] = lipgloss.Width(val)
			}
		}
	}

	writeRow := func(cells []string) {
		var line strings.Builder
		for i, val := range cells {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(pad(val, colWidths[i]))
		}
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
	}

	writeRow(colNames)

	sep := make([]string, len(colWidths))
	for i, width := range colWidths {
		sep[i] = strings.Repeat("─", width)
	}
	writeRow(sep)

	for _, row := range rows {
		writeRow(row)
	}

	if footer {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "(%d rows)\n", len(rows))
	}
	return bw.Flush()
}

// pad adds spaces to reach the desired display width (no truncation).
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate shortens a string to fit width, adding "..." if needed.
func Truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width > 3 {
		return s[:width-3] + "..."
	}
	return s[:width]
}
