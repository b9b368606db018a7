// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <factor>",
		Short: "Print a declared factor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, f, err := rootOpts.loadFactor(args[0])
			if err != nil {
				return err
			}
			return writeFactor(cmd.OutOrStdout(), rootOpts.Format, args[0], f)
		},
	}
}
