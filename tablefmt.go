package tablefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrUnknownBorder     = errors.New("unknown border style")
)

// Format represents an output format.
type Format string

const (
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Pretty   Format = "pretty"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Markdown, CSV, TSV, HTML, JSON, JSONL, YAML, Pretty}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each data row using a Go
// text/template. The template executes against the row's cell slice, so
// columns are addressed positionally:
//
//	tablefmt.GoTemplate("{{index . 0}}: {{index . 1}}")
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders the parsed table t to w in format f. The layout is derived
// from the rows; use [Table.Analyze] separately to surface the structural
// warnings it produces along the way.
func Write(w io.Writer, f Format, t *Table) error {
	l, _ := t.Analyze()
	switch f {
	case Markdown:
		return writeMarkdown(w, t, l)
	case CSV:
		return writeCSV(w, t, l)
	case TSV:
		return writeTSV(w, t, l)
	case HTML:
		return writeHTML(w, t, l)
	case JSON:
		return writeJSON(w, t, l)
	case JSONL:
		return writeJSONL(w, t, l)
	case YAML:
		return writeYAML(w, t, l)
	case Pretty:
		return writePretty(w, t, l, BorderRounded)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t, l)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Reformat reads one pipe table from r and writes its canonical markdown
// form to w. The returned strings are advisory structural warnings in the
// order they were detected; they never affect the output or the error. A
// read failure on r is the only fatal condition.
func Reformat(w io.Writer, r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	t := Parse(string(data))
	l, warns := t.Analyze()
	return warns, writeMarkdown(w, t, l)
}
