// Package cli implements the otalg command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orlikterao/orlikterao"
)

// RootOptions holds the global flags shared by every command.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json"
	Named    string
	File     string
	Ring     string
	Ordering []string

	registry *orlikterao.Registry
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the otalg root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{registry: orlikterao.NewRegistry()}

	cmd := &cobra.Command{
		Use:   "otalg",
		Short: "Orlik-Terao algebras of represented matroids",
		Long: `Compute in the Orlik-Terao algebra of a matroid given either by a catalog
reference (--named wheel:3) or by a definition file (--file m.yaml|m.cue).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError, "otalg",
					fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "log construction and cache statistics to stderr")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVar(&opts.Named, "named", "", "catalog matroid, e.g. wheel:3, uniform:2,4, fano")
	pf.StringVar(&opts.File, "file", "", "matroid definition file (.yaml, .yml, .json, .cue)")
	pf.StringVar(&opts.Ring, "ring", "", "base ring QQ, ZZ or GF(p) (default: the file's ring, else QQ)")
	pf.StringSliceVar(&opts.Ordering, "ordering", nil, "ground set order, smallest first (labels or indices)")

	cmd.AddCommand(newInfoCommand(opts))
	cmd.AddCommand(newBrokenCircuitsCommand(opts))
	cmd.AddCommand(newBasisCommand(opts))
	cmd.AddCommand(newImageCommand(opts))
	cmd.AddCommand(newProductCommand(opts))
	cmd.AddCommand(newChiCommand(opts))

	return cmd
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// logger writes to w at Debug level with --verbose and at Warn otherwise.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
