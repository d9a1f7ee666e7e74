package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newInfoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "info",
		Short:         "Describe the algebra: ground set, rank, circuits, dimension",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(opts, cmd, func(s session) (any, error) {
				return s.info(), nil
			})
		},
	}
}

func newBrokenCircuitsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "broken-circuits",
		Short:         "List the broken-circuit index in scan order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(opts, cmd, func(s session) (any, error) {
				return s.brokenCircuits(), nil
			})
		},
	}
}

func newBasisCommand(opts *RootOptions) *cobra.Command {
	var degree int
	cmd := &cobra.Command{
		Use:           "basis",
		Short:         "List the no-broken-circuit basis",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(opts, cmd, func(s session) (any, error) {
				return s.basis(degree), nil
			})
		},
	}
	cmd.Flags().IntVar(&degree, "degree", -1, "only basis elements of this degree")
	return cmd
}

func newImageCommand(opts *RootOptions) *cobra.Command {
	var labeled bool
	cmd := &cobra.Command{
		Use:   "image <elements>",
		Short: "Expand e_S in the basis",
		Long: `Expand the monomial of a subset S in the no-broken-circuit basis.

Elements are labels or indices separated by commas; quote labels that contain
commas ('"(1, 2)","(2, 3)"'). An empty argument or {} is the empty set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(opts, cmd, func(s session) (any, error) {
				tokens, err := splitElements(args)
				if err != nil {
					return nil, err
				}
				return s.image(tokens, labeled)
			})
		},
	}
	cmd.Flags().BoolVar(&labeled, "labeled", false, "print terms with element labels")
	return cmd
}

func newProductCommand(opts *RootOptions) *cobra.Command {
	var labeled bool
	cmd := &cobra.Command{
		Use:           "product <elements>",
		Short:         "Multiply the generators of the given elements in order",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(opts, cmd, func(s session) (any, error) {
				tokens, err := splitElements(args)
				if err != nil {
					return nil, err
				}
				return s.product(tokens, labeled)
			})
		},
	}
	cmd.Flags().BoolVar(&labeled, "labeled", false, "print terms with element labels")
	return cmd
}

func newChiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "chi <elements>",
		Short:         "Evaluate chi on an independent set",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithSession(opts, cmd, func(s session) (any, error) {
				tokens, err := splitElements(args)
				if err != nil {
					return nil, err
				}
				return s.chi(tokens)
			})
		},
	}
}

// runWithSession opens the selected algebra, runs fn and writes its result.
// Failures are written through the formatter and returned as *ExitError.
func runWithSession(opts *RootOptions, cmd *cobra.Command, fn func(session) (any, error)) error {
	f := opts.formatter(cmd)
	log := opts.logger(cmd.ErrOrStderr())

	s, err := openSession(opts, log)
	if err != nil {
		return fail(f, err)
	}
	data, err := fn(s)
	if err != nil {
		return fail(f, err)
	}
	st := s.stats()
	log.Debug("cache statistics",
		"images", st.Images.Entries,
		"chi", st.Chi.Entries,
		"flats", st.Flats.Entries,
	)
	return f.Success(data)
}

func fail(f *OutputFormatter, err error) error {
	code, exit := ErrCodeCompute, ExitFailure
	switch {
	case errors.Is(err, errArgument):
		code, exit = ErrCodeArgument, ExitCommandError
	case errors.Is(err, errDefinition):
		code, exit = ErrCodeDefinition, ExitCommandError
	}
	if werr := f.Error(code, err.Error()); werr != nil {
		return WrapExitError(ExitFailure, "writing output", werr)
	}
	return WrapExitError(exit, "otalg", err)
}
