// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/spf13/cobra"
)

// NewProductCommand creates the product command.
func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "product <factor> <factor> [factor...]",
		Short: "Multiply factors left to right",
		Long: `Multiply the named factors left to right. The result scope lists the
first factor's variables, then each later factor's new variables in order.

Example:
  factorcalc -m sprinkler.yaml product PRain PSprinkler`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := rootOpts.loadModel()
			if err != nil {
				return err
			}
			fs := make([]*factor.Factor, len(args))
			for i, name := range args {
				if fs[i], err = m.Factor(name); err != nil {
					return WrapExitError(ExitCommandError, "failed to resolve factor", err)
				}
			}
			p, err := factor.ProductAll(fs, rootOpts.factorOptions()...)
			if err != nil {
				return WrapExitError(ExitFailure, "product failed", err)
			}
			rootOpts.logger.Debug("product computed", "scope", p.Scope().Names(), "cells", p.Len())
			return writeFactor(cmd.OutOrStdout(), rootOpts.Format, strings.Join(args, "*"), p)
		},
	}
}
