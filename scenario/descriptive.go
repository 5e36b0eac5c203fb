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
	"github.com/Fantom-foundation/Statlab/dataset"
	"github.com/Fantom-foundation/Statlab/stats"
)

// CentralTendencyView is the mean/median/mode lesson.
type CentralTendencyView struct {
	Values    []float64
	Mean      float64
	Median    float64
	Mode      float64
	ModeCount int
	Title     string
	Err       error
}

// CentralTendency computes mean, median and mode of a typed list.
func (l *Lessons) CentralTendency(text string) CentralTendencyView {
	values, err := l.parser.FloatList(text)
	if err != nil {
		return CentralTendencyView{Err: err}
	}
	v := CentralTendencyView{
		Values: values,
		Mean:   stats.Mean(values),
		Median: stats.Median(values),
	}
	v.Mode, v.ModeCount, _ = stats.Mode(values)
	v.Title = l.Sprintf("Mean: %.2f | Median: %.2f | Mode: %v", v.Mean, v.Median, v.Mode)
	return v
}

// DispersionView is the variance/covariance lesson. The covariance part is
// present only when PairErr is nil.
type DispersionView struct {
	Values     []float64
	Variance   float64
	StdDev     float64
	Pair       dataset.Dataset
	Covariance float64
	Title      string
	Err        error // rejected first list
	PairErr    error // rejected second list or mismatched lengths
}

// Dispersion computes the spread of the first list and its covariance with
// the second.
func (l *Lessons) Dispersion(text, second string) DispersionView {
	values, err := l.parser.FloatList(text)
	if err != nil {
		return DispersionView{Err: err}
	}
	v := DispersionView{
		Values:   values,
		Variance: stats.Variance(values),
		StdDev:   stats.StdDev(values),
	}
	v.Title = l.Sprintf("Variance: %.2f | Standard deviation: %.2f", v.Variance, v.StdDev)

	x, y, err := l.parser.Paired(text, second)
	if err != nil {
		v.PairErr = err
		return v
	}
	v.Pair = dataset.FromXY(x, y)
	v.Covariance = stats.Covariance(x, y)
	v.Title += l.Sprintf(" | Covariance: %.2f", v.Covariance)
	return v
}
