package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lesson = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 10}
var lessonShifted = []float64{15, 25, 35, 45, 55, 65, 75, 85, 95, 15}

func TestCentralTendency(t *testing.T) {
	assert.InDelta(t, 41.0, Mean(lesson), 1e-12)
	assert.InDelta(t, 45.0, Median(lesson), 1e-12)
	v, n, ok := Mode(lesson)
	require.True(t, ok)
	assert.Equal(t, 10.0, v)
	assert.Equal(t, 2, n)
}

func TestMedian_OddLength(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
}

func TestMode_TiesPickSmallest(t *testing.T) {
	v, n, ok := Mode([]float64{3, 1, 3, 1, 2})
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 2, n)

	v, n, ok = Mode([]float64{4, 2, 9})
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, 1, n)
}

func TestDispersion(t *testing.T) {
	assert.InDelta(t, 7690.0/9.0, Variance(lesson), 1e-9)
	assert.InDelta(t, math.Sqrt(7690.0/9.0), StdDev(lesson), 1e-9)
	// the second list is the first shifted by 5, so covariance equals variance
	assert.InDelta(t, 7690.0/9.0, Covariance(lesson, lessonShifted), 1e-9)
	assert.InDelta(t, 1.0, Correlation(lesson, lessonShifted), 1e-12)
}

func TestSmallSamplesReturnNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Median(nil)))
	assert.True(t, math.IsNaN(Variance([]float64{1})))
	assert.True(t, math.IsNaN(Covariance([]float64{1, 2}, []float64{1})))
	assert.True(t, math.IsNaN(Correlation([]float64{1}, []float64{1})))
	assert.True(t, math.IsNaN(LinearFit([]float64{1}, []float64{1}).Slope))
	_, _, ok := Mode(nil)
	assert.False(t, ok)
	assert.True(t, math.IsNaN(Describe(nil).Mean))
}

func TestLinearFit_ExactLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}
	fit := LinearFit(x, y)
	assert.InDelta(t, 2.0, fit.Slope, 1e-12)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-12)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-12)
	assert.InDelta(t, 11.0, fit.At(5), 1e-12)
}

func TestQuadraticFit_Parabola(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2}
	y := []float64{2, -1, -2, -1, 2}
	assert.InDelta(t, 0.0, Correlation(x, y), 1e-12)
	fit := QuadraticFit(x, y)
	assert.InDelta(t, 1.0, fit.Slope, 1e-12)
	assert.InDelta(t, -2.0, fit.Intercept, 1e-12)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-12)
}

func TestQuantileAndDescribe(t *testing.T) {
	x := []float64{4, 1, 3, 2}
	assert.InDelta(t, 1.75, Quantile(0.25, x), 1e-12)
	assert.InDelta(t, 2.5, Quantile(0.5, x), 1e-12)
	assert.InDelta(t, 3.25, Quantile(0.75, x), 1e-12)
	assert.Equal(t, 4.0, Quantile(1, x))
	assert.True(t, math.IsNaN(Quantile(1.5, x)))

	s := Describe(x)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, []float64{1, 1.75, 2.5, 3.25, 4}, s.FiveNumber())
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	// x is unchanged
	assert.Equal(t, []float64{4, 1, 3, 2}, x)
}

func TestMoments_KnownValues(t *testing.T) {
	m := NewMoments(1, 2, 3, 4, 5)
	assert.Equal(t, uint64(5), m.Count())
	assert.InDelta(t, 3.0, m.Mean(), 1e-12)
	assert.InDelta(t, 15.0, m.Sum(), 1e-12)
	assert.InDelta(t, 2.0, m.PopulationVariance(), 1e-12)
	assert.InDelta(t, 0.0, m.Skewness(), 1e-12)
	assert.InDelta(t, 1.7, m.Kurtosis(), 1e-12)
	assert.InDelta(t, -1.3, m.ExcessKurtosis(), 1e-12)
	assert.Equal(t, 1.0, m.Min())
	assert.Equal(t, 5.0, m.Max())
}

func TestMoments_RightSkew(t *testing.T) {
	m := NewMoments(1, 2, 2, 3, 3, 3, 4, 4, 5, 10, 15, 20)
	assert.Greater(t, m.Skewness(), 0.5)
	assert.Greater(t, m.Kurtosis(), 3.0)
}

func TestMoments_Empty(t *testing.T) {
	m := NewMoments()
	assert.True(t, math.IsNaN(m.Mean()))
	assert.True(t, math.IsNaN(m.Min()))
	assert.True(t, math.IsNaN(m.Max()))
	assert.True(t, math.IsNaN(m.Skewness()))
	assert.True(t, math.IsNaN(m.Kurtosis()))
	assert.NotEmpty(t, m.String())
}

func TestMoments_Constant(t *testing.T) {
	m := NewMoments(2, 2, 2)
	assert.Equal(t, 0.0, m.PopulationVariance())
	assert.True(t, math.IsNaN(m.Skewness()))
}

func TestMoments_NormalSample(t *testing.T) {
	rg := rand.New(rand.NewSource(42))
	m := NewMoments()
	for i := 0; i < 200000; i++ {
		m.Update(rg.NormFloat64()*10 + 50)
	}
	assert.InDelta(t, 50.0, m.Mean(), 0.1)
	assert.InDelta(t, 10.0, m.PopulationStdDev(), 0.1)
	assert.InDelta(t, 0.0, m.Skewness(), 0.05)
	assert.InDelta(t, 3.0, m.Kurtosis(), 0.1)
}

func TestHistogram(t *testing.T) {
	h := NewHistogram([]float64{0, 1, 1, 2, 3, 4}, 4)
	require.Len(t, h.Counts, 4)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, h.Edges)
	assert.Equal(t, []float64{1, 2, 1, 2}, h.Counts)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, h.Centers())

	area := 0.0
	for _, d := range h.Density {
		area += d * 1.0
	}
	assert.InDelta(t, 1.0, area, 1e-12)
}

func TestHistogram_ConstantAndEmpty(t *testing.T) {
	h := NewHistogram([]float64{5, 5, 5}, 3)
	sum := 0.0
	for _, c := range h.Counts {
		sum += c
	}
	assert.Equal(t, 3.0, sum)

	assert.Empty(t, NewHistogram(nil, 3).Counts)
	assert.Empty(t, NewHistogram([]float64{1}, 0).Counts)
}

func TestHistogram_RangeBeyondFloat64(t *testing.T) {
	h := NewHistogram([]float64{9e307, -9e307}, DefaultBins)
	assert.Empty(t, h.Counts)
	assert.Empty(t, h.Edges)

	h = NewHistogram([]float64{1e300, -1e300}, DefaultBins)
	assert.Len(t, h.Counts, DefaultBins)
}

func TestCounts(t *testing.T) {
	labels := []string{"b", "a", "b", "c", "b", "a"}
	assert.Equal(t, []Count{{"b", 3}, {"a", 2}, {"c", 1}}, Counts(labels, nil))
	assert.Equal(t, []Count{{"c", 1}, {"d", 0}, {"b", 3}}, Counts(labels, []string{"c", "d", "b"}))
}
