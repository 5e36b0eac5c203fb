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
	"strconv"
	"time"

	"github.com/Fantom-foundation/Statlab/dataset"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Continuous samples N(mean, sd) for the continuous-variable lesson.
func Continuous(rg *rand.Rand, p ContinuousParams) dataset.Dataset {
	p = p.Clamped()
	return dataset.FromSeries(normals(rg, p.Mean, p.StdDev, p.N))
}

// Categorical draws labels from the levels. Without weights every level is
// equally likely; otherwise level i is drawn with probability Weights[i]
// (weights are expected to be validated). The level index is kept in X.
func Categorical(rg *rand.Rand, p CategoricalParams) dataset.Dataset {
	p = p.Clamped()
	if len(p.Levels) == 0 {
		return dataset.New(nil)
	}
	var pick func() int
	if len(p.Weights) == len(p.Levels) {
		c := distuv.NewCategorical(p.Weights, rg)
		pick = func() int { return int(c.Rand()) }
	} else {
		pick = func() int { return rg.Intn(len(p.Levels)) }
	}
	points := make([]dataset.Point, p.N)
	for i := range points {
		k := pick()
		points[i] = dataset.Point{X: float64(k), Group: p.Levels[k]}
	}
	return dataset.New(points)
}

// CrossSection samples ages uniform in [18, 65) and incomes uniform in
// [20000, 100000) observed at a single point in time.
func CrossSection(rg *rand.Rand, p CrossSectionalParams) dataset.Dataset {
	p = p.Clamped()
	points := make([]dataset.Point, p.N)
	for i := range points {
		points[i] = dataset.Point{
			X: float64(18 + rg.Intn(65-18)),
			Y: float64(20000 + rg.Intn(100000-20000)),
		}
	}
	return dataset.New(points)
}

// TimeSeries samples a daily random walk starting near 100. X holds the day
// offset from the start date.
func TimeSeries(rg *rand.Rand, p TimeSeriesParams) dataset.Dataset {
	p = p.Clamped()
	return dataset.FromXY(days(p.Days), walk(rg, p.Days))
}

// Panel samples a random walk for several entities over the same days. The
// walk runs across the entity-major concatenation, so every entity starts
// where the previous one ended.
func Panel(rg *rand.Rand, p PanelParams) dataset.Dataset {
	p = p.Clamped()
	gdp := walk(rg, p.Entities*p.Days)
	parts := make([]dataset.Dataset, p.Entities)
	for e := 0; e < p.Entities; e++ {
		parts[e] = dataset.FromXY(days(p.Days), gdp[e*p.Days:(e+1)*p.Days]).WithGroup(EntityName(e))
	}
	return dataset.Concat(parts...)
}

// EntityName returns the label of the i-th panel entity.
func EntityName(i int) string {
	return "Country " + strconv.Itoa(i+1)
}

// Date converts a day offset of a time series into a calendar date.
func Date(start time.Time, offset float64) time.Time {
	return start.AddDate(0, 0, int(offset))
}

func days(n int) []float64 {
	d := make([]float64, n)
	for i := range d {
		d[i] = float64(i)
	}
	return d
}

func walk(rg *rand.Rand, n int) []float64 {
	steps := normals(rg, 0, 1, n)
	level := 100.0
	for i, s := range steps {
		level += s
		steps[i] = level
	}
	return steps
}
