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
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the number of histogram bins used by the lesson pages.
const DefaultBins = 30

// Histogram holds equally wide bins over the range of a sample.
type Histogram struct {
	Edges   []float64 // len(Counts)+1 bin boundaries
	Counts  []float64 // number of values per bin
	Density []float64 // counts normalized so that the histogram integrates to one
}

// Centers returns the midpoint of every bin.
func (h Histogram) Centers() []float64 {
	c := make([]float64, len(h.Counts))
	for i := range c {
		c[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return c
}

// NewHistogram bins the sample into the given number of equally wide bins.
// The last bin is closed on the right so that the maximum is counted. A
// sample whose range does not fit in a float64 yields an empty histogram.
func NewHistogram(x []float64, bins int) Histogram {
	if bins < 1 || len(x) == 0 {
		return Histogram{}
	}
	sorted := sortedCopy(x)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if r := hi - lo; math.IsInf(r, 0) || math.IsNaN(r) {
		return Histogram{}
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)

	// stat.Histogram requires the last divider to be strictly above the maximum.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	width := (hi - lo) / float64(bins)
	density := make([]float64, bins)
	for i, c := range counts {
		density[i] = c / (float64(len(x)) * width)
	}
	return Histogram{Edges: edges, Counts: counts, Density: density}
}

// Count is the frequency of one category.
type Count struct {
	Label string
	N     int
}

// Counts tallies categorical labels. With a nil order the result is sorted by
// descending frequency (ties by first appearance); otherwise it follows order
// and includes levels that never occurred.
func Counts(labels []string, order []string) []Count {
	freq := map[string]int{}
	seen := []string{}
	for _, l := range labels {
		if _, ok := freq[l]; !ok {
			seen = append(seen, l)
		}
		freq[l]++
	}
	if order != nil {
		res := make([]Count, len(order))
		for i, l := range order {
			res[i] = Count{Label: l, N: freq[l]}
		}
		return res
	}
	res := make([]Count, len(seen))
	for i, l := range seen {
		res[i] = Count{Label: l, N: freq[l]}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].N > res[j].N
	})
	return res
}
