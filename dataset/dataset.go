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

// Package dataset holds the immutable tables produced by the generators.
package dataset

// Point is a single record of a dataset.
type Point struct {
	X     float64 // horizontal value
	Y     float64 // vertical value (unused for univariate samples)
	Group string  // categorical label; empty when the dataset is not grouped
}

// Dataset is an ordered, immutable sequence of points. Accessors hand out
// copies so a stored dataset can never be changed after generation.
type Dataset struct {
	points []Point
}

// New creates a dataset from the given points. The slice is copied.
func New(points []Point) Dataset {
	p := make([]Point, len(points))
	copy(p, points)
	return Dataset{points: p}
}

// FromXY creates an ungrouped dataset from two equally long columns.
// Surplus values of the longer column are ignored.
func FromXY(x, y []float64) Dataset {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	p := make([]Point, n)
	for i := 0; i < n; i++ {
		p[i] = Point{X: x[i], Y: y[i]}
	}
	return Dataset{points: p}
}

// FromSeries creates a univariate dataset; values are kept in X.
func FromSeries(values []float64) Dataset {
	p := make([]Point, len(values))
	for i, v := range values {
		p[i] = Point{X: v}
	}
	return Dataset{points: p}
}

// Concat joins datasets preserving order and group labels.
func Concat(parts ...Dataset) Dataset {
	n := 0
	for _, d := range parts {
		n += len(d.points)
	}
	p := make([]Point, 0, n)
	for _, d := range parts {
		p = append(p, d.points...)
	}
	return Dataset{points: p}
}

// WithGroup returns a copy of the dataset in which every point carries the label.
func (d Dataset) WithGroup(group string) Dataset {
	p := make([]Point, len(d.points))
	for i, pt := range d.points {
		pt.Group = group
		p[i] = pt
	}
	return Dataset{points: p}
}

// Len returns the number of points.
func (d Dataset) Len() int {
	return len(d.points)
}

// Points returns a copy of all points.
func (d Dataset) Points() []Point {
	p := make([]Point, len(d.points))
	copy(p, d.points)
	return p
}

// X returns a copy of the X column.
func (d Dataset) X() []float64 {
	x := make([]float64, len(d.points))
	for i, p := range d.points {
		x[i] = p.X
	}
	return x
}

// Y returns a copy of the Y column.
func (d Dataset) Y() []float64 {
	y := make([]float64, len(d.points))
	for i, p := range d.points {
		y[i] = p.Y
	}
	return y
}

// Labels returns a copy of the group column.
func (d Dataset) Labels() []string {
	l := make([]string, len(d.points))
	for i, p := range d.points {
		l[i] = p.Group
	}
	return l
}

// Groups returns the distinct group labels in order of first appearance.
func (d Dataset) Groups() []string {
	seen := map[string]bool{}
	groups := []string{}
	for _, p := range d.points {
		if !seen[p.Group] {
			seen[p.Group] = true
			groups = append(groups, p.Group)
		}
	}
	return groups
}

// Group returns the subset of points carrying the given label.
func (d Dataset) Group(group string) Dataset {
	p := []Point{}
	for _, pt := range d.points {
		if pt.Group == group {
			p = append(p, pt)
		}
	}
	return Dataset{points: p}
}

// Equal reports whether both datasets hold bit-identical points in the same order.
func (d Dataset) Equal(o Dataset) bool {
	if len(d.points) != len(o.points) {
		return false
	}
	for i := range d.points {
		if d.points[i] != o.points[i] {
			return false
		}
	}
	return true
}
