package tablefmt

import (
	"strings"
	"unicode"
)

// Row is one parsed table line: its trimmed cells plus whether the line
// looked like a GFM delimiter row (only whitespace, hyphens, and colons,
// with at least one hyphen somewhere in the row).
type Row struct {
	Cells []string
	Delim bool
}

// Table is the ordered sequence of rows parsed from one block of text.
// Row lengths may vary; ragged tables are tolerated, not rejected.
type Table struct {
	Rows []Row
}

// Parse splits text into trimmed lines and parses each into a [Row].
// Blank lines are dropped entirely rather than producing empty rows.
func Parse(text string) *Table {
	t := &Table{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		t.Rows = append(t.Rows, parseRow(line))
	}
	return t
}

// parseRow strips at most one leading and one trailing pipe, splits the
// remainder on pipes, and trims each cell. A pipe is always a separator;
// there is no escaping, and an empty segment yields an empty cell.
func parseRow(line string) Row {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return Row{Cells: cells, Delim: isDelimiterRow(cells)}
}

// isDelimiterRow reports whether every cell consists solely of whitespace,
// hyphens, and colons, with at least one hyphen across the cells.
func isDelimiterRow(cells []string) bool {
	hyphen := false
	for _, cell := range cells {
		for _, r := range cell {
			switch {
			case r == '-':
				hyphen = true
			case r == ':' || unicode.IsSpace(r):
			default:
				return false
			}
		}
	}
	return hyphen
}

// headerCells returns the header row's cells, or nil when the table has no
// canonical delimiter row.
func headerCells(t *Table, l Layout) []string {
	if l.Header < 0 {
		return nil
	}
	return t.Rows[l.Header].Cells
}

// dataRows returns the cells of every row that is neither the header nor
// delimiter-like, in original order.
func dataRows(t *Table, l Layout) [][]string {
	var rows [][]string
	for i, row := range t.Rows {
		if i == l.Header || row.Delim {
			continue
		}
		rows = append(rows, row.Cells)
	}
	return rows
}
