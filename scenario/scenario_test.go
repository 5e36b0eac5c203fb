package scenario

import (
	"errors"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Statlab/generator"
	"github.com/Fantom-foundation/Statlab/input"
	"github.com/Fantom-foundation/Statlab/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newLessons() *Lessons {
	return New(language.English, nil)
}

func TestAnscombe_SharedStatistics(t *testing.T) {
	for _, set := range Quartet() {
		assert.InDelta(t, 9.0, set.MeanX, 0.01, set.Name)
		assert.InDelta(t, 7.50, set.MeanY, 0.01, set.Name)
		assert.InDelta(t, 11.0, set.VarianceX, 0.01, set.Name)
		assert.InDelta(t, 4.125, set.VarianceY, 0.01, set.Name)
		assert.InDelta(t, 0.816, set.Correlation, 0.01, set.Name)
		assert.InDelta(t, 0.5, set.Fit.Slope, 0.01, set.Name)
		assert.InDelta(t, 3.0, set.Fit.Intercept, 0.01, set.Name)
		assert.Equal(t, 11, set.Data.Len())
	}
}

func TestAnscombe_OutOfRange(t *testing.T) {
	_, err := Anscombe(AnscombeSets)
	assert.Error(t, err)
	_, err = Anscombe(-1)
	assert.Error(t, err)
}

func TestAnscombeQuartet_Selection(t *testing.T) {
	l := newLessons()
	v := l.AnscombeQuartet(4)
	require.NotNil(t, v.Selected)
	assert.Equal(t, "Dataset 4", v.Selected.Name)
	assert.Equal(t, "Dataset 4: Correlation 0.82 | y = 0.50x + 3.00", v.Title)

	all := l.AnscombeQuartet(0)
	assert.Nil(t, all.Selected)
	assert.Len(t, all.Sets, 4)
}

func TestTitles_FollowLanguage(t *testing.T) {
	v := New(language.BrazilianPortuguese, nil).AnscombeQuartet(1)
	assert.Contains(t, v.Title, "0,82")
}

func TestLinear_StaleUntilRegenerated(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)

	first := l.Linear(s, generator.LinearParams{Rho: 0.9}, false)
	assert.True(t, strings.HasPrefix(first.Title, "Sample Correlation: "))
	assert.Greater(t, first.Correlation, 0.7)

	// a parameter change alone keeps the stored sample
	moved := l.Linear(s, generator.LinearParams{Rho: -0.9}, false)
	assert.True(t, first.Data.Equal(moved.Data))
	assert.Equal(t, generator.LinearParams{Rho: 0.9, N: generator.DefaultPoints}, moved.Generated)

	fresh := l.Linear(s, generator.LinearParams{Rho: -0.9}, true)
	assert.Less(t, fresh.Correlation, -0.7)
	assert.Equal(t, uint64(2), fresh.Generation)
}

func TestNonlinear_QuadraticFit(t *testing.T) {
	v := newLessons().Nonlinear(session.NewStore(3, nil), generator.CurvedParams{Curvature: 1}, false)
	assert.Less(t, v.Correlation, 0.2)
	assert.Greater(t, v.Fit.RSquared, 0.9)
	assert.True(t, strings.HasPrefix(v.Title, "Correlation: "))
}

func TestSimpson_GroupsAndPooled(t *testing.T) {
	v := newLessons().Simpson(session.NewStore(3, nil), generator.SimpsonParams{SlopeDiff: -1}, false)
	require.Len(t, v.Groups, 2)
	assert.Equal(t, generator.GroupA, v.Groups[0].Name)
	assert.Greater(t, v.Groups[0].Correlation, 0.5)
	assert.Less(t, v.Groups[1].Correlation, -0.5)
	assert.Contains(t, v.Title, "Group A: ")
	assert.Contains(t, v.Title, "Group B: ")
}

func TestDistributionShape_Families(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)

	pos := l.DistributionShape(s, generator.ShapeParams{Family: generator.PositiveSkew}, "", false, false)
	assert.Equal(t, "positive", pos.Skew)
	lep := l.DistributionShape(s, generator.ShapeParams{Family: generator.Leptokurtic, N: 5000}, "", false, false)
	assert.Equal(t, "leptokurtic", lep.Tails)
	flat := l.DistributionShape(s, generator.ShapeParams{Family: generator.Platykurtic}, "", false, false)
	assert.Equal(t, "platykurtic", flat.Tails)
	assert.Equal(t, "symmetric", flat.Skew)

	assert.Equal(t, []string{
		ShapeDataset(generator.Leptokurtic),
		ShapeDataset(generator.Platykurtic),
		ShapeDataset(generator.PositiveSkew),
	}, s.Names())

	// switching back to a family shows its stored sample
	again := l.DistributionShape(s, generator.ShapeParams{Family: generator.PositiveSkew}, "", false, false)
	assert.True(t, pos.Data.Equal(again.Data))
}

func TestDistributionShape_Custom(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)

	v := l.DistributionShape(s, generator.ShapeParams{Family: generator.Custom}, DefaultCustom, false, false)
	require.NoError(t, v.Err)
	assert.Equal(t, 12, v.Data.Len())
	assert.Equal(t, "positive", v.Skew)
	assert.Empty(t, s.Names())

	bad := l.DistributionShape(s, generator.ShapeParams{Family: generator.Custom}, "1,two,3", false, false)
	var perr *input.ParseError
	require.True(t, errors.As(bad.Err, &perr))
	assert.Equal(t, "two", perr.Token)
	assert.Equal(t, 1, perr.Position)
}

func TestDistributionShape_CustomRangeTooWide(t *testing.T) {
	l := newLessons()
	v := l.DistributionShape(session.NewStore(3, nil), generator.ShapeParams{Family: generator.Custom}, "9e307,-9e307", true, false)
	var verr *input.ValidationError
	require.True(t, errors.As(v.Err, &verr))
	assert.Equal(t, "data", verr.Field)
	assert.Nil(t, v.Reference)

	wide := l.DistributionShape(session.NewStore(3, nil), generator.ShapeParams{Family: generator.Custom}, "1e300,-1e300", false, false)
	require.NoError(t, wide.Err)
	assert.Len(t, wide.Histogram.Counts, 30)
}

func TestDistributionShape_KeepsGeneratedParams(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)

	first := l.DistributionShape(s, generator.ShapeParams{Family: generator.Normal, N: 200}, "", false, false)
	moved := l.DistributionShape(s, generator.ShapeParams{Family: generator.Normal, N: 400}, "", false, false)
	assert.Equal(t, first.Generated, moved.Generated)
	assert.Equal(t, "family=normal n=200", moved.Generated.String())
	assert.Equal(t, 200, moved.Data.Len())

	custom := l.DistributionShape(s, generator.ShapeParams{Family: generator.Custom}, DefaultCustom, false, false)
	assert.Nil(t, custom.Generated)
}

func TestDistributionShape_Reference(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)
	p := generator.ShapeParams{Family: generator.NegativeSkew}

	a := l.DistributionShape(s, p, "", true, false)
	require.NotNil(t, a.Reference)
	assert.Equal(t, "symmetric", a.Reference.Skew)
	assert.InDelta(t, a.Moments.Mean(), a.Reference.Moments.Mean(), 1)
	assert.Equal(t, a.Summary.Count, a.Reference.Summary.Count)

	b := l.DistributionShape(s, p, "", true, false)
	assert.Equal(t, a.Reference.Summary, b.Reference.Summary)

	c := l.DistributionShape(s, p, "", true, true)
	assert.NotEqual(t, a.Reference.Summary, c.Reference.Summary)
	assert.False(t, a.Data.Equal(c.Data))
}

func TestCentralTendency(t *testing.T) {
	v := newLessons().CentralTendency(DefaultList)
	require.NoError(t, v.Err)
	assert.Equal(t, 41.0, v.Mean)
	assert.Equal(t, 45.0, v.Median)
	assert.Equal(t, 10.0, v.Mode)
	assert.Equal(t, 2, v.ModeCount)
	assert.Equal(t, "Mean: 41.00 | Median: 45.00 | Mode: 10", v.Title)

	bad := newLessons().CentralTendency("1,,2")
	assert.Equal(t, "parse", input.Kind(bad.Err))
}

func TestDispersion(t *testing.T) {
	l := newLessons()
	v := l.Dispersion(DefaultList, DefaultSecondList)
	require.NoError(t, v.Err)
	require.NoError(t, v.PairErr)
	assert.InDelta(t, 7690.0/9, v.Variance, 1e-9)
	assert.InDelta(t, 7690.0/9, v.Covariance, 1e-9)
	assert.Equal(t, 10, v.Pair.Len())

	mismatch := l.Dispersion(DefaultList, "1,2,3")
	require.NoError(t, mismatch.Err)
	assert.Equal(t, "validation", input.Kind(mismatch.PairErr))
	assert.InDelta(t, 7690.0/9, mismatch.Variance, 1e-9)
	assert.NotContains(t, mismatch.Title, "Covariance")
}

func TestNominalAndOrdinal(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)

	nominal := l.Nominal(s, DefaultCategories, false)
	require.NoError(t, nominal.Err)
	total := 0
	for _, c := range nominal.Counts {
		total += c.N
	}
	assert.Equal(t, generator.CategoricalDraws, total)

	ordinal := l.Ordinal(s, DefaultLevels, "2,5,3", false)
	require.NoError(t, ordinal.Err)
	assert.True(t, ordinal.Renormalized)
	require.Len(t, ordinal.Counts, 3)
	assert.Equal(t, "Low", ordinal.Counts[0].Label)
	assert.Equal(t, "High", ordinal.Counts[2].Label)

	bad := l.Ordinal(s, DefaultLevels, "0.5,0.5", false)
	assert.Equal(t, "validation", input.Kind(bad.Err))

	empty := l.Nominal(s, " , ", false)
	assert.Equal(t, "validation", input.Kind(empty.Err))

	twice := l.Ordinal(s, "Low,Low,High", "0.2,0.5,0.3", false)
	assert.Equal(t, "validation", input.Kind(twice.Err))
	assert.Empty(t, twice.Counts)
}

func TestCategorical_StoredLevelsOutliveInput(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)

	first := l.Nominal(s, "Red,Blue", false)
	moved := l.Nominal(s, "Red,Blue,Green", false)
	assert.Equal(t, []string{"Red", "Blue"}, moved.Levels)
	assert.Equal(t, first.Generated, moved.Generated)
	assert.Equal(t, "levels=[Red Blue] n=100", moved.Generated.String())
	assert.Equal(t, "levels=[Red Blue Green] n=100", moved.Requested.String())
}

func TestDataTypes(t *testing.T) {
	l := newLessons()
	s := session.NewStore(3, nil)

	cross := l.CrossSection(s, generator.CrossSectionalParams{N: 50}, false)
	assert.Equal(t, 50, cross.Data.Len())

	ts := l.TimeSeries(s, generator.TimeSeriesParams{Days: 30}, false)
	require.Len(t, ts.Dates, 30)
	assert.Equal(t, generator.DefaultStart, ts.Dates[0])
	assert.Equal(t, generator.DefaultStart.AddDate(0, 0, 29), ts.Dates[29])

	panel := l.Panel(s, generator.PanelParams{Entities: 4, Days: 20}, false)
	assert.Len(t, panel.Data.Groups(), 4)
	assert.Len(t, panel.Dates, 20)
	assert.Equal(t, 80, panel.Data.Len())
}

func TestContinuous(t *testing.T) {
	v := newLessons().Continuous(session.NewStore(3, nil), generator.ContinuousParams{Mean: 20, StdDev: 5}, false)
	assert.Equal(t, generator.ContinuousSamples, v.Summary.Count)
	assert.InDelta(t, 20, v.Summary.Mean, 0.3)
	assert.InDelta(t, 5, v.Summary.Std, 0.3)
	assert.Len(t, v.Histogram.Counts, 30)
}
