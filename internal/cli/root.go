// SPDX-License-Identifier: MIT

// Package cli implements the factorcalc command tree: load a YAML model and
// apply the factor algebra to its declared factors from the command line.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/model"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ModelPath      string
	Format         string // "text" | "json" | "yaml"
	Verbose        bool
	MaxCardinality int

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the factorcalc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "factorcalc",
		Short: "Discrete factor algebra over YAML models",
		Long: `factorcalc loads a model of discrete variables and factors from YAML
and prints factors, their products, marginals and reductions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.MaxCardinality <= 0 {
				return NewExitError(ExitCommandError, "--max-cardinality must be > 0")
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ModelPath, "model", "m", "", "path to the YAML model (required)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().IntVar(&opts.MaxCardinality, "max-cardinality", factor.DefaultMaxCardinality, "largest factor the algebra may allocate")
	_ = cmd.MarkPersistentFlagRequired("model")

	cmd.AddCommand(NewVarsCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewMarginalizeCommand(opts))
	cmd.AddCommand(NewSumOutCommand(opts))
	cmd.AddCommand(NewReduceCommand(opts))

	return cmd
}

// factorOptions translates global flags into factor options.
func (o *RootOptions) factorOptions() []factor.Option {
	return []factor.Option{factor.WithMaxCardinality(o.MaxCardinality)}
}

// loadModel reads the model named by --model.
func (o *RootOptions) loadModel() (*model.Model, error) {
	m, err := model.NewLoader(o.logger, o.factorOptions()...).LoadFile(o.ModelPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load model", err)
	}
	o.logger.Debug("model ready", "path", o.ModelPath, "factors", len(m.FactorNames()))

	return m, nil
}

// loadFactor reads the model and returns the named factor.
func (o *RootOptions) loadFactor(name string) (*model.Model, *factor.Factor, error) {
	m, err := o.loadModel()
	if err != nil {
		return nil, nil, err
	}
	f, err := m.Factor(name)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to resolve factor", err)
	}

	return m, f, nil
}
