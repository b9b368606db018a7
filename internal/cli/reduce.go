// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/spf13/cobra"
)

// ReduceOptions holds flags for the reduce command.
type ReduceOptions struct {
	*RootOptions
	Evidence []string
}

// NewReduceCommand creates the reduce command.
func NewReduceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReduceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reduce <factor>",
		Short: "Condition a factor on evidence",
		Long: `Fix variables to observed values and drop them from the scope.
Values are matched against the variable's domain by their printed form.

Example:
  factorcalc -m sprinkler.yaml reduce PSprinkler --evidence Rain=dry`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, f, err := opts.loadFactor(args[0])
			if err != nil {
				return err
			}
			evidence, err := parseEvidence(f.Scope(), opts.Evidence)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --evidence", err)
			}
			out, err := f.Reduce(evidence)
			if err != nil {
				return WrapExitError(ExitFailure, "reduce failed", err)
			}
			name := fmt.Sprintf("%s|%s", args[0], strings.Join(opts.Evidence, ","))
			return writeFactor(cmd.OutOrStdout(), opts.Format, name, out)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Evidence, "evidence", nil, "NAME=VALUE observation (repeatable)")

	return cmd
}

// parseEvidence turns NAME=VALUE pairs into a typed Assignment using the
// domains of s.
func parseEvidence(s factor.Scope, pairs []string) (factor.Assignment, error) {
	out := make(factor.Assignment, len(pairs))
	for _, p := range pairs {
		name, text, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%q: want NAME=VALUE", p)
		}
		v, found := s.Variable(name)
		if !found {
			return nil, fmt.Errorf("%q: %w", name, factor.ErrUnknownVariable)
		}
		val, err := v.Lookup(text)
		if err != nil {
			return nil, err
		}
		out[name] = val
	}

	return out, nil
}
