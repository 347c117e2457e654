package tablefmt

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, t *Table, l Layout) error {
	cw := csv.NewWriter(w)
	if h := headerCells(t, l); h != nil {
		if err := cw.Write(h); err != nil {
			return err
		}
	}
	for _, row := range dataRows(t, l) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
