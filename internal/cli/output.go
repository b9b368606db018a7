// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/model"
	"github.com/katalvlaran/lvfactor/tabular"
)

// Process exit statuses. Anything that is not an *ExitError maps to ExitFailure.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the algebra refused: conflicts, bad evidence, limits
	ExitCommandError = 2 // the invocation was wrong: flags, model file, factor name
)

// ExitError carries the status main should exit with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode finds the first *ExitError in err's chain.
func GetExitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	return ExitFailure
}

// jsonFactor is the JSON shape of a factor: scope names plus one row per assignment.
type jsonFactor struct {
	Name  string    `json:"name"`
	Scope []string  `json:"scope"`
	Rows  []jsonRow `json:"rows"`
}

type jsonRow struct {
	Assignment factor.Assignment `json:"assignment"`
	Value      float64           `json:"value"`
}

// writeFactor prints f in the requested format.
func writeFactor(w io.Writer, format, name string, f *factor.Factor) error {
	switch format {
	case "json":
		out := jsonFactor{Name: name, Scope: f.Scope().Names(), Rows: make([]jsonRow, 0, f.Len())}
		for asg, v := range f.All() {
			// JSON has no NaN or Inf literal.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return WrapExitError(ExitFailure, "cannot write json",
					fmt.Errorf("%s%v = %v: %w (use --format text or yaml)", name, asg, v, factor.ErrNaNInf))
			}
			out.Rows = append(out.Rows, jsonRow{Assignment: asg, Value: v})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		return model.EncodeFactor(w, name, f)
	default:
		if _, err := fmt.Fprintf(w, "# %s\n", name); err != nil {
			return err
		}
		return tabular.Render(w, f)
	}
}
