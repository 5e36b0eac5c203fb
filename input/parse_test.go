package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatList(t *testing.T) {
	values, err := ParseFloatList(" 10, 20 ,30.5,-4e1")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30.5, -40}, values)
}

func TestParseFloatList_Errors(t *testing.T) {
	tests := []struct {
		text     string
		token    string
		position int
	}{
		{"1,2,abc", "abc", 2},
		{"", "", 0},
		{"1,,2", "", 1},
		{"1,NaN", "NaN", 1},
		{"inf", "inf", 0},
	}
	for _, test := range tests {
		_, err := ParseFloatList(test.text)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "text %q: expected ParseError, got %v", test.text, err)
		assert.Equal(t, test.token, pe.Token)
		assert.Equal(t, test.position, pe.Position)
		assert.Equal(t, "parse", Kind(err))
	}
}

func TestParser_RejectsOversizedInput(t *testing.T) {
	p := NewParser(8 * datasize.B)
	_, err := p.FloatList("1,2,3,4,5,6")
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "list", ve.Field)

	_, err = p.FloatList("1,2")
	assert.NoError(t, err)
}

func TestParser_ZeroLimitDisablesCheck(t *testing.T) {
	p := NewParser(0)
	_, err := p.FloatList(strings.Repeat("1,", 100000) + "1")
	assert.NoError(t, err)
}

func TestParseLabels(t *testing.T) {
	labels, err := ParseLabels(" Red, Blue,,Green ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, labels)

	_, err = ParseLabels(" , ")
	assert.Equal(t, "validation", Kind(err))
}

func TestParseLabels_RejectsDuplicates(t *testing.T) {
	_, err := ParseLabels("Low, Low,High")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "labels", verr.Field)
	assert.Contains(t, verr.Reason, `"Low"`)
}

func TestParsePaired(t *testing.T) {
	x, y, err := ParsePaired("1,2,3", "4,5,6")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x)
	assert.Equal(t, []float64{4, 5, 6}, y)

	_, _, err = ParsePaired("1,2,3", "4,5")
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))

	_, _, err = ParsePaired("1,2", "4,x")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "second list")
}

func TestParseProbabilities(t *testing.T) {
	p, err := ParseProbabilities("0.2,0.5,0.3", 3)
	require.NoError(t, err)
	assert.False(t, p.Renormalized)
	assert.InDeltaSlice(t, []float64{0.2, 0.5, 0.3}, p.Weights, 1e-12)
}

func TestParseProbabilities_Renormalizes(t *testing.T) {
	p, err := ParseProbabilities("1,2,1", 3)
	require.NoError(t, err)
	assert.True(t, p.Renormalized)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.25}, p.Weights, 1e-12)
}

func TestParseProbabilities_Rejects(t *testing.T) {
	for _, test := range []struct {
		text   string
		levels int
	}{
		{"0.5,0.5", 3},
		{"0.5,-0.5,1", 3},
		{"0,0,0", 3},
	} {
		_, err := ParseProbabilities(test.text, test.levels)
		assert.Equal(t, "validation", Kind(err), "text %q", test.text)
	}
	_, err := ParseProbabilities("a,b", 2)
	assert.Equal(t, "parse", Kind(err))
}

func TestKind_UnknownError(t *testing.T) {
	assert.Equal(t, "", Kind(errors.New("boom")))
	assert.Equal(t, "", Kind(nil))
}
