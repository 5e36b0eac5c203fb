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

// Package generator samples the synthetic datasets of the lessons. All
// generators are pure functions of their parameters and the random source;
// the same seed always produces the same dataset.
package generator

import (
	"math"

	"github.com/Fantom-foundation/Statlab/dataset"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Group labels of the Simpson's-paradox dataset.
const (
	GroupA = "Group A"
	GroupB = "Group B"
)

// NewRand creates a seeded random source for the generators.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// sample draws n values from the distribution.
func sample(d distuv.Rander, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = d.Rand()
	}
	return values
}

func normals(rg *rand.Rand, mu, sigma float64, n int) []float64 {
	return sample(distuv.Normal{Mu: mu, Sigma: sigma, Src: rg}, n)
}

func uniforms(rg *rand.Rand, min, max float64, n int) []float64 {
	return sample(distuv.Uniform{Min: min, Max: max, Src: rg}, n)
}

// Correlated draws X, E ~ N(0, 1) and returns (X, ρX + sqrt(1-ρ²)E), whose
// population correlation is ρ.
func Correlated(rg *rand.Rand, p LinearParams) dataset.Dataset {
	p = p.Clamped()
	x := normals(rg, 0, 1, p.N)
	e := normals(rg, 0, 1, p.N)
	k := math.Sqrt(1 - p.Rho*p.Rho)
	y := make([]float64, p.N)
	for i := range y {
		y[i] = p.Rho*x[i] + k*e[i]
	}
	return dataset.FromXY(x, y)
}

// Curved draws X ~ U(-2, 2) and returns (X, κ²X² + N(0, 0.1) - 2). Over a
// symmetric range the linear correlation is near zero although Y is a
// function of X.
func Curved(rg *rand.Rand, p CurvedParams) dataset.Dataset {
	p = p.Clamped()
	x := uniforms(rg, -2, 2, p.N)
	noise := normals(rg, 0, 0.1, p.N)
	k2 := p.Curvature * p.Curvature
	y := make([]float64, p.N)
	for i := range y {
		y[i] = k2*x[i]*x[i] + noise[i] - 2
	}
	return dataset.FromXY(x, y)
}

// Simpson produces two labelled groups: A with X ~ U(0, 5), Y = X + ε and
// B with X ~ U(4, 9), Y = δ(X-4) + 5 + ε, where ε ~ N(0, 0.5).
func Simpson(rg *rand.Rand, p SimpsonParams) dataset.Dataset {
	p = p.Clamped()
	nA := p.N / 2
	nB := p.N - nA

	xA := uniforms(rg, 0, 5, nA)
	yA := normals(rg, 0, 0.5, nA)
	for i := range yA {
		yA[i] += xA[i]
	}

	xB := uniforms(rg, 4, 9, nB)
	yB := normals(rg, 0, 0.5, nB)
	for i := range yB {
		yB[i] += p.SlopeDiff*(xB[i]-4) + 5
	}

	return dataset.Concat(
		dataset.FromXY(xA, yA).WithGroup(GroupA),
		dataset.FromXY(xB, yB).WithGroup(GroupB),
	)
}
