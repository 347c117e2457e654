package tablefmt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Layout is the column geometry derived from a parsed table: one width and
// one alignment per column, where the column count is the maximum cell count
// observed across all rows. Widths count runes; a cell's rendered length
// always equals its column's width.
type Layout struct {
	// Widths holds the longest cell length seen per column, including the
	// delimiter row's raw dash/colon text.
	Widths []int
	// Aligns holds one alignment per column, derived from the canonical
	// delimiter row. Columns without a delimiter cell default to left.
	Aligns []Alignment
	// Header and Delim are the canonical header and delimiter row indexes,
	// or -1 when no delimiter-candidate row exists after row 0.
	Header int
	Delim  int
}

// Analyze derives the table's layout and collects structural warnings.
// Warnings are advisory: the table always renders, falling back to observed
// widths and left alignment. Analyze performs no I/O and is a pure function
// of the parsed rows; callers decide where the warnings go.
func (t *Table) Analyze() (Layout, []string) {
	l := Layout{Header: -1, Delim: -1}
	var warns []string

	// The first delimiter-candidate after row 0 becomes the canonical
	// delimiter and pins the header to row 0. A candidate at row 0 itself is
	// never promoted.
	for i, row := range t.Rows {
		if i > 0 && row.Delim {
			l.Delim = i
			l.Header = 0
			break
		}
	}

	if l.Delim < 0 && len(t.Rows) > 0 {
		warns = append(warns, "no delimiter row found: table may not render properly")
		// Only row 0 can be a candidate here; anything later would have been
		// promoted above.
		for _, row := range t.Rows {
			if row.Delim {
				warns = append(warns, "delimiter row should come after the header row")
				break
			}
		}
	}

	if l.Delim >= 0 && len(t.Rows) > 1 {
		h, d := len(t.Rows[l.Header].Cells), len(t.Rows[l.Delim].Cells)
		if h != d {
			warns = append(warns, fmt.Sprintf("header has %d columns but delimiter row has %d", h, d))
		}
	}
	if l.Delim >= 0 {
		want := len(t.Rows[l.Header].Cells)
		for i, row := range t.Rows {
			if i == l.Header || i == l.Delim {
				continue
			}
			// A difference of one column is tolerated silently.
			if got := len(row.Cells); got-want > 1 || want-got > 1 {
				warns = append(warns, fmt.Sprintf("row %d has %d columns, expected %d", i+1, got, want))
			}
		}
	}

	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			for len(l.Widths) <= i {
				l.Widths = append(l.Widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > l.Widths[i] {
				l.Widths[i] = n
			}
		}
	}

	if l.Delim >= 0 {
		for _, cell := range t.Rows[l.Delim].Cells {
			l.Aligns = append(l.Aligns, alignmentOf(cell))
		}
	} else if len(t.Rows) > 0 {
		l.Aligns = make([]Alignment, len(t.Rows[0].Cells))
	}
	// Pad to the full column count; rows wider than the delimiter (or first)
	// row still need an alignment for every cell.
	for len(l.Aligns) < len(l.Widths) {
		l.Aligns = append(l.Aligns, AlignLeft)
	}

	return l, warns
}

// alignmentOf maps a delimiter cell to its alignment: colons on both ends
// mean center, a trailing colon alone means right, anything else is left.
func alignmentOf(cell string) Alignment {
	switch {
	case strings.HasPrefix(cell, ":") && strings.HasSuffix(cell, ":"):
		return AlignCenter
	case strings.HasSuffix(cell, ":"):
		return AlignRight
	default:
		return AlignLeft
	}
}
