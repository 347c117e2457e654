// Package tablefmt parses GitHub-flavored Markdown pipe tables and re-emits
// them in a canonical, visually aligned form.
//
// The pipeline has four stages: [Parse] splits the input into trimmed lines
// and parses each into a row of cells, [Table.Analyze] locates the canonical
// header/delimiter pair and derives per-column widths and alignments, and
// the renderers re-emit every row. [Reformat] runs the whole pipeline from
// an io.Reader to an io.Writer:
//
//	warns, err := tablefmt.Reformat(os.Stdout, os.Stdin)
//	for _, w := range warns {
//		fmt.Fprintln(os.Stderr, w)
//	}
//
// # Structural tolerance
//
// Malformed tables are never an error. Ragged rows render their own cells
// padded to the observed column widths; a table without a delimiter row
// renders left-aligned. Anomalies surface as the warning strings returned
// by [Table.Analyze] and [Reformat] — the library itself never writes
// diagnostics, so callers decide where they go.
//
// # Alignment
//
// A delimiter cell ending in a colon is right-aligned, one with colons on
// both ends is centered, and anything else (including a leading colon
// alone) is left-aligned. Re-rendered delimiter cells span their column's
// full width, with minimal markers "-:" and ":-:" for columns narrower
// than the marker itself.
//
// # Other formats
//
// A parsed table can also be re-emitted as CSV, TSV, HTML, JSON, JSONL,
// YAML, a bordered terminal table, or through a Go text/template. Use
// [Write] with a [Format] constant, [ParseFormat] to convert a CLI flag
// string, and [Marshal] to render to bytes:
//
//	t := tablefmt.Parse(input)
//	tablefmt.Write(os.Stdout, tablefmt.CSV, t)
//
// Markdown widths count runes; only the Pretty format measures terminal
// display width.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrUnknownBorder] — unknown border style name
package tablefmt
