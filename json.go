package tablefmt

import (
	"encoding/json"
	"io"
)

// Document is the serializable form of a parsed table used by the JSON and
// YAML formats. Header is empty when the table has no canonical delimiter
// row; Rows holds the data rows only, delimiter-like rows excluded.
type Document struct {
	Header []string   `json:"header,omitempty" yaml:"header,omitempty"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

func document(t *Table, l Layout) Document {
	return Document{Header: headerCells(t, l), Rows: dataRows(t, l)}
}

func writeJSON(w io.Writer, t *Table, l Layout) error {
	return json.NewEncoder(w).Encode(document(t, l))
}
