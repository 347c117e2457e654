package tablefmt

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, t *Table, l Layout) error {
	if h := headerCells(t, l); h != nil {
		if _, err := fmt.Fprintln(w, strings.Join(h, "\t")); err != nil {
			return err
		}
	}
	for _, row := range dataRows(t, l) {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
