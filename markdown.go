package tablefmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// writeMarkdown re-emits every row in canonical pipe-table form. A row
// renders only its own cells, each padded to the column's width; rows
// flagged delimiter-like (all of them, not just the canonical delimiter)
// are rebuilt from width and alignment rather than echoed.
func writeMarkdown(w io.Writer, t *Table, l Layout) error {
	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			if row.Delim {
				cells[i] = delimiterCell(l.Widths[i], l.Aligns[i])
			} else {
				cells[i] = padCell(cell, l.Widths[i], l.Aligns[i])
			}
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// delimiterCell synthesizes a delimiter marker of the given width. Right and
// center markers need at least 2 and 3 characters; narrower columns get the
// literal minimal marker.
func delimiterCell(width int, align Alignment) string {
	switch align {
	case AlignRight:
		if width < 2 {
			return "-:"
		}
		return strings.Repeat("-", width-1) + ":"
	case AlignCenter:
		if width < 3 {
			return ":-:"
		}
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		return strings.Repeat("-", width)
	}
}

// padCell pads s to width runes using the column alignment. Centering puts
// the odd leftover space on the right.
func padCell(s string, width int, align Alignment) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
