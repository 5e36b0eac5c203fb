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

package stats

import (
	"fmt"
	"math"
)

// Moments accumulates the central moments of a sample in a single pass.
// Skewness and kurtosis are the biased (population) estimators,
// i.e. g1 = m3/m2^1.5 and b2 = m4/m2^2.
type Moments struct {
	count uint64
	min   float64
	max   float64

	// kahan sum
	ksum float64
	c    float64

	m1 float64
	m2 float64
	m3 float64
	m4 float64
}

// NewMoments creates an accumulator pre-filled with the given values.
func NewMoments(values ...float64) *Moments {
	m := &Moments{}
	for _, v := range values {
		m.Update(v)
	}
	return m
}

func (s *Moments) ifEmpty(empty, notEmpty float64) float64 {
	if s.count != 0 {
		return notEmpty
	}
	return empty
}

// Update adds a value to the sample.
func (s *Moments) Update(x float64) {
	prevN, n := float64(s.count), float64(s.count+1)

	delta := x - s.m1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN

	t := delta * deltaN * prevN
	s.m1 += deltaN
	s.m4 += t*deltaN2*(n*n-3*n+3) + (6 * deltaN2 * s.m2) - (4 * deltaN * s.m3)
	s.m3 += t*deltaN*(n-2) - (3 * deltaN * s.m2)
	s.m2 += t

	y := x - s.c
	z := s.ksum + y
	s.c = (z - s.ksum) - y
	s.ksum = z

	s.min = s.ifEmpty(x, math.Min(s.min, x))
	s.max = s.ifEmpty(x, math.Max(s.max, x))
	s.count++
}

// Count returns the number of values seen.
func (s *Moments) Count() uint64 {
	return s.count
}

// Sum returns the compensated sum of all values.
func (s *Moments) Sum() float64 {
	return s.ksum
}

// Mean returns the arithmetic mean or NaN for an empty sample.
func (s *Moments) Mean() float64 {
	return s.ifEmpty(math.NaN(), s.m1)
}

// PopulationVariance returns the variance with denominator n.
func (s *Moments) PopulationVariance() float64 {
	return s.ifEmpty(math.NaN(), s.m2/float64(s.count))
}

// PopulationStdDev returns the standard deviation with denominator n.
func (s *Moments) PopulationStdDev() float64 {
	return math.Sqrt(s.PopulationVariance())
}

// Skewness returns the biased sample skewness; NaN for constant or empty samples.
func (s *Moments) Skewness() float64 {
	if s.count == 0 || s.m2 == 0 {
		return math.NaN()
	}
	return math.Sqrt(float64(s.count)) * s.m3 / math.Pow(s.m2, 1.5)
}

// Kurtosis returns the Pearson kurtosis (3 for a normal distribution).
func (s *Moments) Kurtosis() float64 {
	if s.count == 0 || s.m2 == 0 {
		return math.NaN()
	}
	return float64(s.count) * s.m4 / (s.m2 * s.m2)
}

// ExcessKurtosis returns the Fisher kurtosis (0 for a normal distribution).
func (s *Moments) ExcessKurtosis() float64 {
	return s.Kurtosis() - 3.0
}

// Min returns the smallest value or NaN for an empty sample.
func (s *Moments) Min() float64 {
	return s.ifEmpty(math.NaN(), s.min)
}

// Max returns the largest value or NaN for an empty sample.
func (s *Moments) Max() float64 {
	return s.ifEmpty(math.NaN(), s.max)
}

func (s *Moments) String() string {
	return fmt.Sprintf("{count: %d, mean: %v, skewness: %v, kurtosis: %v}",
		s.count, s.Mean(), s.Skewness(), s.Kurtosis())
}
