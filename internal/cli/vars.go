// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewVarsCommand creates the vars command.
func NewVarsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List declared variables and their domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := rootOpts.loadModel()
			if err != nil {
				return err
			}
			for _, name := range m.VariableNames() {
				v, err := m.Variable(name)
				if err != nil {
					return WrapExitError(ExitFailure, "inconsistent model", err)
				}
				vals := make([]string, 0, v.Cardinality())
				for _, d := range v.Domain() {
					vals = append(vals, fmt.Sprint(d))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d): %s\n", name, v.Cardinality(), strings.Join(vals, ", "))
			}
			return nil
		},
	}
}
