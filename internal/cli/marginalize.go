// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// MarginalizeOptions holds flags for the marginalize command.
type MarginalizeOptions struct {
	*RootOptions
	Keep []string
}

// NewMarginalizeCommand creates the marginalize command.
func NewMarginalizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MarginalizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "marginalize <factor>",
		Short: "Sum a factor onto the kept variables",
		Long: `Sum out every variable not listed in --keep. The result is laid out in
the order given to --keep.

Example:
  factorcalc -m joint.yaml marginalize Joint --keep Rain,Grass`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, f, err := opts.loadFactor(args[0])
			if err != nil {
				return err
			}
			target, err := m.Scope(opts.Keep...)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --keep", err)
			}
			out, err := f.Marginalize(target)
			if err != nil {
				return WrapExitError(ExitFailure, "marginalize failed", err)
			}
			name := fmt.Sprintf("%s[%s]", args[0], strings.Join(opts.Keep, ","))
			return writeFactor(cmd.OutOrStdout(), opts.Format, name, out)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Keep, "keep", nil, "variables to keep, in result order")

	return cmd
}

// NewSumOutCommand creates the sumout command.
func NewSumOutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sumout <factor> <variable> [variable...]",
		Short: "Sum the listed variables out of a factor",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, f, err := rootOpts.loadFactor(args[0])
			if err != nil {
				return err
			}
			out, err := f.SumOut(args[1:]...)
			if err != nil {
				return WrapExitError(ExitFailure, "sumout failed", err)
			}
			name := fmt.Sprintf("%s-{%s}", args[0], strings.Join(args[1:], ","))
			return writeFactor(cmd.OutOrStdout(), rootOpts.Format, name, out)
		},
	}
}
