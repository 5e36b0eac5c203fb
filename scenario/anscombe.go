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

package scenario

import (
	"fmt"

	"github.com/Fantom-foundation/Statlab/dataset"
	"github.com/Fantom-foundation/Statlab/stats"
)

var anscombeX = []float64{10, 8, 13, 9, 11, 14, 6, 4, 12, 7, 5}

// The quartet of Anscombe (1973).
var anscombe = [4]struct{ x, y []float64 }{
	{anscombeX, []float64{8.04, 6.95, 7.58, 8.81, 8.33, 9.96, 7.24, 4.26, 10.84, 4.82, 5.68}},
	{anscombeX, []float64{9.14, 8.14, 8.74, 8.77, 9.26, 8.10, 6.13, 3.10, 9.13, 7.26, 4.74}},
	{anscombeX, []float64{7.46, 6.77, 12.74, 7.11, 7.81, 8.84, 6.08, 5.39, 8.15, 6.42, 5.73}},
	{
		[]float64{8, 8, 8, 8, 8, 8, 8, 19, 8, 8, 8},
		[]float64{6.58, 5.76, 7.71, 8.84, 8.47, 7.04, 5.25, 12.50, 5.56, 7.91, 6.89},
	},
}

// AnscombeSets is the number of sets in the quartet.
const AnscombeSets = len(anscombe)

// AnscombeSet is one set of the quartet with its summary statistics.
type AnscombeSet struct {
	Name        string
	Data        dataset.Dataset
	MeanX       float64
	MeanY       float64
	StdX        float64
	StdY        float64
	VarianceX   float64
	VarianceY   float64
	Correlation float64
	Fit         stats.Fit
}

// AnscombeName returns the display name of the i-th set, starting at 0.
func AnscombeName(i int) string {
	return fmt.Sprintf("Dataset %d", i+1)
}

// Anscombe returns the i-th set of the quartet, starting at 0.
func Anscombe(i int) (AnscombeSet, error) {
	if i < 0 || i >= AnscombeSets {
		return AnscombeSet{}, fmt.Errorf("anscombe set %d out of range [1, %d]", i+1, AnscombeSets)
	}
	set := anscombe[i]
	return AnscombeSet{
		Name:        AnscombeName(i),
		Data:        dataset.FromXY(set.x, set.y).WithGroup(AnscombeName(i)),
		MeanX:       stats.Mean(set.x),
		MeanY:       stats.Mean(set.y),
		StdX:        stats.StdDev(set.x),
		StdY:        stats.StdDev(set.y),
		VarianceX:   stats.Variance(set.x),
		VarianceY:   stats.Variance(set.y),
		Correlation: stats.Correlation(set.x, set.y),
		Fit:         stats.LinearFit(set.x, set.y),
	}, nil
}

// Quartet returns all four sets.
func Quartet() []AnscombeSet {
	res := make([]AnscombeSet, AnscombeSets)
	for i := range res {
		res[i], _ = Anscombe(i)
	}
	return res
}

// AnscombeView is the Anscombe lesson; Selected is nil when all four sets
// are shown.
type AnscombeView struct {
	Sets     []AnscombeSet
	Selected *AnscombeSet
	Title    string
}

// AnscombeQuartet builds the Anscombe lesson. A selection outside
// [1, AnscombeSets] shows every set.
func (l *Lessons) AnscombeQuartet(selection int) AnscombeView {
	v := AnscombeView{Sets: Quartet()}
	if selection >= 1 && selection <= AnscombeSets {
		v.Selected = &v.Sets[selection-1]
		v.Title = l.Sprintf("%s: Correlation %.2f | y = %.2fx + %.2f",
			v.Selected.Name, v.Selected.Correlation, v.Selected.Fit.Slope, v.Selected.Fit.Intercept)
		return v
	}
	v.Title = l.Sprintf("Correlation of every set: %.2f", v.Sets[0].Correlation)
	return v
}
