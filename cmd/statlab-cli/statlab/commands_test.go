package statlab

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Statlab/input"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(args ...string) (string, error) {
	color.NoColor = true
	var buf bytes.Buffer
	app := &cli.App{
		Name:   "statlab",
		Writer: &buf,
		Commands: []*cli.Command{
			&DescribeCommand,
			&AnscombeCommand,
			&GenerateCommand,
			&ShapeCommand,
		},
	}
	err := app.Run(append([]string{"statlab"}, args...))
	return buf.String(), err
}

func TestDescribeCommand(t *testing.T) {
	out, err := runApp("describe", "10,20,30", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Mean:\t\t25.0000")
	assert.Contains(t, out, "Median:\t\t25.0000")
}

func TestDescribeCommand_Errors(t *testing.T) {
	_, err := runApp("describe")
	assert.Error(t, err)

	_, err = runApp("describe", "1,x,3")
	var perr *input.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "x", perr.Token)

	_, err = runApp("describe", "--max-input", "4B", "1,2,3,4,5")
	assert.Equal(t, "validation", input.Kind(err))
}

func TestAnscombeCommand(t *testing.T) {
	out, err := runApp("anscombe")
	require.NoError(t, err)
	for _, name := range []string{"Dataset 1", "Dataset 2", "Dataset 3", "Dataset 4"} {
		assert.Contains(t, out, name)
	}
}

func TestGenerateCommand_SeedIsReproducible(t *testing.T) {
	first, err := runApp("generate", "--rho", "0.8", "--seed", "7", "linear")
	require.NoError(t, err)
	second, err := runApp("generate", "--rho", "0.8", "--seed", "7", "linear")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "Sample Correlation: "))
	assert.Contains(t, first, "rho=0.80 n=150")
	assert.Equal(t, first, second)
}

func TestGenerateCommand_Scenarios(t *testing.T) {
	out, err := runApp("generate", "--seed", "7", "--n", "300", "simpson")
	require.NoError(t, err)
	assert.Contains(t, out, "Group A")
	assert.Contains(t, out, "n=300")

	out, err = runApp("generate", "--seed", "7", "--curvature", "1.5", "nonlinear")
	require.NoError(t, err)
	assert.Contains(t, out, "curvature=1.50")

	_, err = runApp("generate", "quadratic")
	assert.Error(t, err)
	_, err = runApp("generate")
	assert.Error(t, err)
}

func TestShapeCommand(t *testing.T) {
	out, err := runApp("shape", "--data", "1,2,2,3,3,3,40", "custom")
	require.NoError(t, err)
	assert.Contains(t, out, "CUSTOM")
	assert.Contains(t, out, "positive")

	out, err = runApp("shape", "--seed", "3", "--compare", "leptokurtic")
	require.NoError(t, err)
	assert.Contains(t, out, "NORMAL")

	_, err = runApp("shape", "lognormal")
	assert.Error(t, err)

	_, err = runApp("shape", "--data", "1,,2", "custom")
	assert.Equal(t, "parse", input.Kind(err))
}

func TestShapeCommand_RangeTooWide(t *testing.T) {
	_, err := runApp("shape", "--data", "9e307,-9e307", "custom")
	require.Error(t, err)
	assert.Equal(t, "validation", input.Kind(err))
	assert.Contains(t, err.Error(), "values span too wide a range")
}
