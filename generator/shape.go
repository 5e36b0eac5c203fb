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
	"github.com/Fantom-foundation/Statlab/dataset"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Shape samples a univariate dataset of the selected family:
//
//	normal         N(50, 10)
//	positive-skew  5·χ²(2) + 30
//	negative-skew  70 - 5·χ²(2)
//	leptokurtic    10·t(3) + 50
//	platykurtic    U(30, 70)
//	custom         the user supplied values
func Shape(rg *rand.Rand, p ShapeParams) dataset.Dataset {
	p = p.Clamped()
	var values []float64
	switch p.Family {
	case PositiveSkew:
		values = sample(distuv.ChiSquared{K: 2, Src: rg}, p.N)
		for i := range values {
			values[i] = values[i]*5 + 30
		}
	case NegativeSkew:
		values = sample(distuv.ChiSquared{K: 2, Src: rg}, p.N)
		for i := range values {
			values[i] = 70 - values[i]*5
		}
	case Leptokurtic:
		values = sample(distuv.StudentsT{Mu: 50, Sigma: 10, Nu: 3, Src: rg}, p.N)
	case Platykurtic:
		values = uniforms(rg, 30, 70, p.N)
	case Custom:
		values = p.Custom
	default:
		values = normals(rg, 50, 10, p.N)
	}
	return dataset.FromSeries(values)
}

// NormalLike samples a normal reference with the given mean and standard
// deviation, used to compare a shape against the bell curve.
func NormalLike(rg *rand.Rand, mean, stdDev float64, n int) dataset.Dataset {
	if stdDev <= 0 {
		values := make([]float64, n)
		for i := range values {
			values[i] = mean
		}
		return dataset.FromSeries(values)
	}
	return dataset.FromSeries(normals(rg, mean, stdDev, n))
}
