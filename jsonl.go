package tablefmt

import (
	"encoding/json"
	"io"
)

// writeJSONL emits one JSON value per data row. With a header each row
// becomes an object keyed by header cell (missing cells map to ""); without
// one each row is a plain array. Cells beyond the header are dropped.
func writeJSONL(w io.Writer, t *Table, l Layout) error {
	header := headerCells(t, l)
	enc := json.NewEncoder(w)
	for _, row := range dataRows(t, l) {
		if header == nil {
			if err := enc.Encode(row); err != nil {
				return err
			}
			continue
		}
		obj := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				obj[key] = row[i]
			} else {
				obj[key] = ""
			}
		}
		if err := enc.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
