package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_AccessorsReturnCopies(t *testing.T) {
	d := FromXY([]float64{1, 2, 3}, []float64{4, 5, 6})

	x := d.X()
	x[0] = 100
	p := d.Points()
	p[1].Y = 100

	assert.Equal(t, []float64{1, 2, 3}, d.X())
	assert.Equal(t, []float64{4, 5, 6}, d.Y())
}

func TestNew_CopiesInput(t *testing.T) {
	points := []Point{{X: 1, Y: 1}}
	d := New(points)
	points[0].X = 7

	assert.Equal(t, 1.0, d.X()[0])
}

func TestFromXY_TruncatesToShorterColumn(t *testing.T) {
	d := FromXY([]float64{1, 2, 3}, []float64{1})
	assert.Equal(t, 1, d.Len())
}

func TestConcat_PreservesOrderAndGroups(t *testing.T) {
	a := FromXY([]float64{1, 2}, []float64{1, 2}).WithGroup("A")
	b := FromXY([]float64{3}, []float64{3}).WithGroup("B")

	d := Concat(a, b)

	require.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"A", "B"}, d.Groups())
	assert.Equal(t, []float64{1, 2}, d.Group("A").X())
	assert.Equal(t, []float64{3}, d.Group("B").X())
	assert.Equal(t, 0, d.Group("C").Len())
}

func TestWithGroup_LeavesOriginalUntouched(t *testing.T) {
	a := FromSeries([]float64{1, 2})
	_ = a.WithGroup("A")
	assert.Equal(t, []string{""}, a.Groups())
}

func TestEqual(t *testing.T) {
	a := FromXY([]float64{1, 2}, []float64{3, 4})
	b := FromXY([]float64{1, 2}, []float64{3, 4})
	c := FromXY([]float64{1, 2}, []float64{3, 5})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(FromSeries([]float64{1})))
}
