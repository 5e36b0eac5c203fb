// Copyright 2024 Fantom Foundation
// This file is part of Statlab, interactive statistics lessons.
//
// Statlab is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Statlab is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Statlab. If not, see <http://www.gnu.org/licenses/>.

package generator

import (
	"fmt"
	"math"
	"time"
)

// Bounds of the lesson controls.
const (
	DefaultPoints = 150 // sample size of the scatter lessons

	MinCurvature = 0.1
	MaxCurvature = 2.0

	MinSlopeDiff = -2.0
	MaxSlopeDiff = 2.0

	MinShapeSamples     = 100
	MaxShapeSamples     = 10000
	DefaultShapeSamples = 1000

	ContinuousSamples = 10000
	CategoricalDraws  = 100

	MinCrossSectional = 10
	MaxCrossSectional = 1000
	MinDays           = 10
	MaxDays           = 365
	MinEntities       = 2
	MaxEntities       = 10
)

// Params is the parameter record of one generator. Every record has a
// Clamped method returning a copy forced into the bounds of its controls.
type Params interface {
	fmt.Stringer
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// positive returns n or the default if n is not positive.
func positive(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// LinearParams configures the correlated-pair generator.
type LinearParams struct {
	Rho float64 // target correlation in [-1, 1]
	N   int     // number of points
}

func (p LinearParams) Clamped() LinearParams {
	return LinearParams{Rho: clamp(p.Rho, -1, 1), N: positive(p.N, DefaultPoints)}
}

func (p LinearParams) String() string {
	return fmt.Sprintf("rho=%.2f n=%d", p.Rho, p.N)
}

// CurvedParams configures the U-shape generator.
type CurvedParams struct {
	Curvature float64 // in [0.1, 2]
	N         int
}

func (p CurvedParams) Clamped() CurvedParams {
	return CurvedParams{Curvature: clamp(p.Curvature, MinCurvature, MaxCurvature), N: positive(p.N, DefaultPoints)}
}

func (p CurvedParams) String() string {
	return fmt.Sprintf("curvature=%.2f n=%d", p.Curvature, p.N)
}

// SimpsonParams configures the Simpson's-paradox generator.
type SimpsonParams struct {
	SlopeDiff float64 // slope of group B in [-2, 2]
	N         int
}

func (p SimpsonParams) Clamped() SimpsonParams {
	return SimpsonParams{SlopeDiff: clamp(p.SlopeDiff, MinSlopeDiff, MaxSlopeDiff), N: positive(p.N, DefaultPoints)}
}

func (p SimpsonParams) String() string {
	return fmt.Sprintf("slope=%.2f n=%d", p.SlopeDiff, p.N)
}

// Family selects a distribution shape.
type Family string

const (
	Normal       Family = "normal"
	PositiveSkew Family = "positive-skew"
	NegativeSkew Family = "negative-skew"
	Leptokurtic  Family = "leptokurtic"
	Platykurtic  Family = "platykurtic"
	Custom       Family = "custom"
)

// Families lists all shapes in display order.
var Families = []Family{Normal, PositiveSkew, NegativeSkew, Leptokurtic, Platykurtic, Custom}

// ParseFamily returns the family with the given name.
func ParseFamily(name string) (Family, error) {
	for _, f := range Families {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown distribution family %q", name)
}

// ShapeParams configures the distribution-shape generator.
type ShapeParams struct {
	Family Family
	N      int       // sample size of the built-in families
	Custom []float64 // sample used verbatim by the custom family
}

func (p ShapeParams) Clamped() ShapeParams {
	f := p.Family
	if _, err := ParseFamily(string(f)); err != nil {
		f = Normal
	}
	return ShapeParams{
		Family: f,
		N:      clampInt(positive(p.N, DefaultShapeSamples), MinShapeSamples, MaxShapeSamples),
		Custom: p.Custom,
	}
}

func (p ShapeParams) String() string {
	if p.Family == Custom {
		return fmt.Sprintf("family=%s n=%d", p.Family, len(p.Custom))
	}
	return fmt.Sprintf("family=%s n=%d", p.Family, p.N)
}

// ContinuousParams configures the continuous-variable generator.
type ContinuousParams struct {
	Mean   float64 // in [0, 100]
	StdDev float64 // in [0.1, 20]
	N      int
}

func (p ContinuousParams) Clamped() ContinuousParams {
	return ContinuousParams{
		Mean:   clamp(p.Mean, 0, 100),
		StdDev: clamp(p.StdDev, 0.1, 20),
		N:      positive(p.N, ContinuousSamples),
	}
}

func (p ContinuousParams) String() string {
	return fmt.Sprintf("mean=%.2f sd=%.2f n=%d", p.Mean, p.StdDev, p.N)
}

// CategoricalParams configures uniform draws from a set of categories.
// Weights is nil for nominal categories, otherwise one weight per level.
type CategoricalParams struct {
	Levels  []string
	Weights []float64
	N       int
}

func (p CategoricalParams) Clamped() CategoricalParams {
	p.N = positive(p.N, CategoricalDraws)
	return p
}

func (p CategoricalParams) String() string {
	if p.Weights == nil {
		return fmt.Sprintf("levels=%v n=%d", p.Levels, p.N)
	}
	return fmt.Sprintf("levels=%v weights=%v n=%d", p.Levels, p.Weights, p.N)
}

// CrossSectionalParams configures the age/income cross-section.
type CrossSectionalParams struct {
	N int
}

func (p CrossSectionalParams) Clamped() CrossSectionalParams {
	return CrossSectionalParams{N: clampInt(positive(p.N, 100), MinCrossSectional, MaxCrossSectional)}
}

func (p CrossSectionalParams) String() string {
	return fmt.Sprintf("n=%d", p.N)
}

// TimeSeriesParams configures the random-walk price series.
type TimeSeriesParams struct {
	Start time.Time
	Days  int
}

// DefaultStart is the first day of the generated time series.
var DefaultStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

func (p TimeSeriesParams) Clamped() TimeSeriesParams {
	start := p.Start
	if start.IsZero() {
		start = DefaultStart
	}
	return TimeSeriesParams{Start: start, Days: clampInt(positive(p.Days, 100), MinDays, MaxDays)}
}

func (p TimeSeriesParams) String() string {
	return fmt.Sprintf("start=%s days=%d", p.Start.Format("2006-01-02"), p.Days)
}

// PanelParams configures the panel of entities over time.
type PanelParams struct {
	Entities int
	Days     int
}

func (p PanelParams) Clamped() PanelParams {
	return PanelParams{
		Entities: clampInt(positive(p.Entities, 3), MinEntities, MaxEntities),
		Days:     clampInt(positive(p.Days, 100), MinDays, MaxDays),
	}
}

func (p PanelParams) String() string {
	return fmt.Sprintf("entities=%d days=%d", p.Entities, p.Days)
}
