package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/internal/cli"
	"github.com/katalvlaran/lvfactor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sprinkler = `
variables:
  - name: Rain
    domain: [wet, dry]
  - name: Sprinkler
    domain: [on, off]
  - name: Level
    domain: [1, 2, 3]
factors:
  - name: PRain
    scope: [Rain]
    values: [0.2, 0.8]
  - name: PSprinkler
    scope: [Rain, Sprinkler]
    values: [0.01, 0.99, 0.4, 0.6]
  - name: PLevel
    scope: [Level, Rain]
    values: [1, 2, 3, 4, 5, 6]
`

// writeModel stores the sprinkler model in a temp dir and returns its path.
func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sprinkler), 0o600))

	return path
}

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestVars(t *testing.T) {
	out, _, err := run(t, "-m", writeModel(t), "vars")
	require.NoError(t, err)
	require.Equal(t, "Rain (2): wet, dry\nSprinkler (2): on, off\nLevel (3): 1, 2, 3\n", out)
}

func TestShowText(t *testing.T) {
	out, _, err := run(t, "-m", writeModel(t), "show", "PRain")
	require.NoError(t, err)
	require.Equal(t, "# PRain\nRain  value\nwet     0.2\ndry     0.8\n", out)
}

func TestReduceText(t *testing.T) {
	out, _, err := run(t, "-m", writeModel(t), "reduce", "PSprinkler", "--evidence", "Rain=dry")
	require.NoError(t, err)
	require.Equal(t, "# PSprinkler|Rain=dry\nSprinkler  value\non           0.4\noff          0.6\n", out)
}

func TestReduceTypedEvidence(t *testing.T) {
	out, _, err := run(t, "-m", writeModel(t), "--format", "yaml", "reduce", "PLevel", "--evidence", "Level=2")
	require.NoError(t, err)

	m, err := model.NewLoader(nil).Load(strings.NewReader(out))
	require.NoError(t, err)
	f, err := m.Factor("PLevel|Level=2")
	require.NoError(t, err)
	require.Equal(t, []string{"Rain"}, f.Scope().Names())
	require.Equal(t, []float64{3, 4}, f.Values())
}

func TestProductJSON(t *testing.T) {
	out, _, err := run(t, "-m", writeModel(t), "--format", "json", "product", "PRain", "PSprinkler")
	require.NoError(t, err)

	var got struct {
		Name  string   `json:"name"`
		Scope []string `json:"scope"`
		Rows  []struct {
			Assignment map[string]any `json:"assignment"`
			Value      float64        `json:"value"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "PRain*PSprinkler", got.Name)
	require.Equal(t, []string{"Rain", "Sprinkler"}, got.Scope)
	require.Len(t, got.Rows, 4)

	want := []float64{0.002, 0.198, 0.32, 0.48}
	for i, row := range got.Rows {
		assert.InDelta(t, want[i], row.Value, 1e-12, "row %d", i)
	}
	assert.Equal(t, map[string]any{"Rain": "dry", "Sprinkler": "on"}, got.Rows[2].Assignment)
}

func TestMarginalizeAndSumOut(t *testing.T) {
	path := writeModel(t)

	out, _, err := run(t, "-m", path, "--format", "yaml", "marginalize", "PLevel", "--keep", "Rain")
	require.NoError(t, err)
	m, err := model.NewLoader(nil).Load(strings.NewReader(out))
	require.NoError(t, err)
	marg, err := m.Factor("PLevel[Rain]")
	require.NoError(t, err)
	require.Equal(t, []float64{1 + 3 + 5, 2 + 4 + 6}, marg.Values())

	out, _, err = run(t, "-m", path, "--format", "yaml", "sumout", "PLevel", "Rain")
	require.NoError(t, err)
	m, err = model.NewLoader(nil).Load(strings.NewReader(out))
	require.NoError(t, err)
	summed, err := m.Factor("PLevel-{Rain}")
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7, 11}, summed.Values())
}

func TestVerboseLogs(t *testing.T) {
	_, stderr, err := run(t, "-m", writeModel(t), "-v", "show", "PRain")
	require.NoError(t, err)
	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, "Model loaded")
}

func TestExitCodes(t *testing.T) {
	path := writeModel(t)

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"bad format", []string{"-m", path, "--format", "xml", "vars"}, cli.ExitCommandError},
		{"missing model file", []string{"-m", filepath.Join(t.TempDir(), "nope.yaml"), "vars"}, cli.ExitCommandError},
		{"unknown factor", []string{"-m", path, "show", "Nope"}, cli.ExitCommandError},
		{"bad evidence value", []string{"-m", path, "reduce", "PRain", "--evidence", "Rain=snow"}, cli.ExitCommandError},
		{"malformed evidence", []string{"-m", path, "reduce", "PRain", "--evidence", "Rain"}, cli.ExitCommandError},
		{"unknown keep", []string{"-m", path, "marginalize", "PRain", "--keep", "Nope"}, cli.ExitCommandError},
		{"keep outside factor", []string{"-m", path, "marginalize", "PRain", "--keep", "Level"}, cli.ExitFailure},
		{"sumout unknown", []string{"-m", path, "sumout", "PRain", "Level"}, cli.ExitFailure},
		{"limit on load", []string{"-m", path, "--max-cardinality", "3", "vars"}, cli.ExitCommandError},
		{"bad limit", []string{"-m", path, "--max-cardinality", "0", "vars"}, cli.ExitCommandError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			require.Equal(t, tc.code, cli.GetExitCode(err), "err: %v", err)
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	_, _, err := run(t, "-m", writeModel(t), "sumout", "PRain", "Level")
	require.ErrorIs(t, err, factor.ErrUnknownVariable)
}

func TestJSONRejectsNonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	src := "variables:\n  - name: X\n    domain: [a, b]\nfactors:\n  - name: F\n    scope: [X]\n    values: [.nan, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	_, _, err := run(t, "-m", path, "--format", "json", "show", "F")
	require.ErrorIs(t, err, factor.ErrNaNInf)
	require.Equal(t, cli.ExitFailure, cli.GetExitCode(err))

	out, _, err := run(t, "-m", path, "show", "F")
	require.NoError(t, err)
	assert.Contains(t, out, "NaN")
}
