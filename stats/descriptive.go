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

// Package stats computes the descriptive statistics shown by the lessons.
// Estimators follow the usual conventions: variance, standard deviation and
// covariance use the n-1 denominator, skewness and kurtosis are the biased
// moment ratios. Functions return NaN instead of panicking when the sample
// is too small.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// Median returns the middle value, or the midpoint of the two middle values for even n.
func Median(x []float64) float64 {
	return Quantile(0.5, x)
}

// Mode returns the most frequent value; on ties the smallest of the most
// frequent values is returned. ok is false for an empty sample.
func Mode(x []float64) (value float64, count int, ok bool) {
	if len(x) == 0 {
		return math.NaN(), 0, false
	}
	_, maxCount := stat.Mode(x, nil)
	sorted := sortedCopy(x)
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if float64(j-i) == maxCount {
			return sorted[i], j - i, true
		}
		i = j
	}
	return math.NaN(), 0, false
}

// Variance returns the unbiased sample variance.
func Variance(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Variance(x, nil)
}

// StdDev returns the sample standard deviation (n-1 denominator).
func StdDev(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Covariance returns the sample covariance of two equally long samples.
func Covariance(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return math.NaN()
	}
	return stat.Covariance(x, y, nil)
}

// Correlation returns the Pearson correlation coefficient of two equally
// long samples; NaN if either sample is constant.
func Correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// Fit is a first-degree least-squares polynomial y = Slope*x + Intercept.
type Fit struct {
	Slope     float64
	Intercept float64
	RSquared  float64 // coefficient of determination of the fit
}

// At evaluates the fitted line.
func (f Fit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// LinearFit fits a straight line to (x, y) by least squares.
func LinearFit(x, y []float64) Fit {
	if len(x) < 2 || len(x) != len(y) {
		return Fit{Slope: math.NaN(), Intercept: math.NaN(), RSquared: math.NaN()}
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return Fit{
		Slope:     beta,
		Intercept: alpha,
		RSquared:  stat.RSquared(x, y, nil, alpha, beta),
	}
}

// QuadraticFit fits y = Slope*x² + Intercept, i.e. a line over the squared
// regressor. It exposes dependencies that are invisible to Pearson correlation.
func QuadraticFit(x, y []float64) Fit {
	sq := make([]float64, len(x))
	floats.MulTo(sq, x, x)
	return LinearFit(sq, y)
}

// Quantile returns the p-quantile using linear interpolation between the
// order statistics at (n-1)p.
func Quantile(p float64, x []float64) float64 {
	if len(x) == 0 || p < 0 || p > 1 {
		return math.NaN()
	}
	return quantileSorted(p, sortedCopy(x))
}

func quantileSorted(p float64, sorted []float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Summary is the classic count/mean/std/min/quartiles/max description of a sample.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarizes a sample.
func Describe(x []float64) Summary {
	if len(x) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}
	sorted := sortedCopy(x)
	return Summary{
		Count:  len(x),
		Mean:   Mean(x),
		Std:    StdDev(x),
		Min:    sorted[0],
		Q1:     quantileSorted(0.25, sorted),
		Median: quantileSorted(0.5, sorted),
		Q3:     quantileSorted(0.75, sorted),
		Max:    sorted[len(sorted)-1],
	}
}

// FiveNumber returns min, Q1, median, Q3 and max as used by box plots.
func (s Summary) FiveNumber() []float64 {
	return []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max}
}

func sortedCopy(x []float64) []float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	return sorted
}
