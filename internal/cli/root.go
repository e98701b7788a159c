// Package cli implements the sheetgen command line tool: offline sign-in
// sheet generation and attendance reconciliation against a roster file.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"

	// Now stamps artifacts. Tests pin it; nil means time.Now.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the sheetgen command. Invoked without a subcommand
// it generates one sheet, so `sheetgen --roster r.txt --days 5 --out dir` works.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	gen := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "sheetgen",
		Short: "Generate printable attendance sign-in sheets",
		Long: `Generate multi-day attendance sign-in sheets as PDF files from a roster
file, and reconcile attendance reports against the same roster.

A roster file holds identifiers (usually email addresses) separated by any
whitespace. Duplicates are ignored; first-seen order is kept.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	gen.bind(cmd)

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newAbsentCommand(opts))

	return cmd
}

// readRoster returns the raw contents of a roster or report file; "-" reads stdin.
func readRoster(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// emit writes v as indented JSON, or text via the fallback, per --format.
func emit(cmd *cobra.Command, opts *RootOptions, v any, text func(io.Writer) error) error {
	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(w)
}
