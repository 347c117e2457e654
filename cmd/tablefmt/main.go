package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bjaus/tablefmt"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	var format string
	var border string

	cmd := &cobra.Command{
		Use:   "tablefmt",
		Short: "Reformat a Markdown pipe table from stdin",
		Long: `tablefmt reads a GitHub-flavored Markdown pipe table from stdin and
writes it back to stdout with consistent column widths, preserved alignment
markers, and clean cell padding. Structural problems (missing delimiter row,
mismatched column counts) are reported on stderr as warnings and never fail
the run.

The parsed table can also be re-emitted in another format with --format.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tablefmt.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			t := tablefmt.Parse(string(data))
			_, warns := t.Analyze()
			for _, warn := range warns {
				fmt.Fprintln(cmd.ErrOrStderr(), warn)
			}
			if f == tablefmt.Pretty {
				style, err := tablefmt.ParseBorderStyle(border)
				if err != nil {
					return err
				}
				return tablefmt.WritePretty(cmd.OutOrStdout(), t, style)
			}
			return tablefmt.Write(cmd.OutOrStdout(), f, t)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", tablefmt.Markdown.String(),
		"output format: markdown|csv|tsv|html|json|jsonl|yaml|pretty|go-template=<tmpl>")
	cmd.Flags().StringVar(&border, "border", "rounded",
		"border style for --format=pretty: rounded|ascii|heavy|double|none")
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
