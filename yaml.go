package tablefmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t *Table, l Layout) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(document(t, l)); err != nil {
		return err
	}
	return enc.Close()
}
