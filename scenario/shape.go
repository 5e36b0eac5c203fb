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
	"math"

	"github.com/Fantom-foundation/Statlab/dataset"
	"github.com/Fantom-foundation/Statlab/generator"
	"github.com/Fantom-foundation/Statlab/input"
	"github.com/Fantom-foundation/Statlab/session"
	"github.com/Fantom-foundation/Statlab/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Classification thresholds of the shape lesson.
const (
	SkewThreshold    = 0.5
	LeptokurticAbove = 3.5
	PlatykurticBelow = 2.5
	referenceSuffix  = "/normal-reference"
)

// Shape is a set of moment statistics together with their reading.
type Shape struct {
	Moments   *stats.Moments
	Summary   stats.Summary
	Histogram stats.Histogram
	Skew      string // "positive", "negative" or "symmetric"
	Tails     string // "leptokurtic", "platykurtic" or "mesokurtic"
}

// ClassifySkew reads the direction of a skewness value.
func ClassifySkew(skewness float64) string {
	switch {
	case skewness > SkewThreshold:
		return "positive"
	case skewness < -SkewThreshold:
		return "negative"
	default:
		return "symmetric"
	}
}

// ClassifyTails reads a Pearson kurtosis value.
func ClassifyTails(kurtosis float64) string {
	switch {
	case kurtosis > LeptokurticAbove:
		return "leptokurtic"
	case kurtosis < PlatykurticBelow:
		return "platykurtic"
	default:
		return "mesokurtic"
	}
}

// NewShape computes the shape statistics of a sample.
func NewShape(values []float64) Shape {
	m := stats.NewMoments(values...)
	return Shape{
		Moments:   m,
		Summary:   stats.Describe(values),
		Histogram: stats.NewHistogram(values, stats.DefaultBins),
		Skew:      ClassifySkew(m.Skewness()),
		Tails:     ClassifyTails(m.Kurtosis()),
	}
}

// ShapeView is the distribution-shape lesson.
type ShapeView struct {
	Family     generator.Family
	Data       dataset.Dataset
	Generated  generator.Params // parameters of the stored sample; nil for custom values
	Generation uint64
	Shape
	Reference *Shape // normal sample with the same mean and spread, if requested
	Title     string
	Err       error // rejected custom input
}

// referenceParams identifies the sample a normal reference was drawn for.
type referenceParams struct {
	Mean, StdDev float64
	N            int
}

func (p referenceParams) String() string {
	return fmt.Sprintf("mean=%.4f sd=%.4f n=%d", p.Mean, p.StdDev, p.N)
}

// ShapeDataset returns the session dataset name of a family. Every family
// keeps its own sample, so switching between families does not resample.
func ShapeDataset(f generator.Family) string {
	return ShapeName + "/" + string(f)
}

// DistributionShape resolves the distribution-shape lesson. The custom
// family is computed from customText on every render; a parse error, or
// values whose range overflows a float64, leaves Err set and the rest of
// the view empty. With compare set, a normal reference is drawn once for
// the current sample and redrawn only when the sample changes or a
// regeneration is requested.
func (l *Lessons) DistributionShape(s *session.Store, p generator.ShapeParams, customText string, compare, regenerate bool) ShapeView {
	p = p.Clamped()
	v := ShapeView{Family: p.Family}
	if p.Family == generator.Custom {
		values, err := l.parser.FloatList(customText)
		if err != nil {
			v.Err = err
			return v
		}
		if math.IsInf(floats.Max(values)-floats.Min(values), 0) {
			v.Err = &input.ValidationError{Field: "data", Reason: "values span too wide a range"}
			return v
		}
		p.Custom = values
		v.Data = generator.Shape(nil, p)
	} else {
		e := s.Resolve(ShapeDataset(p.Family), p, regenerate, func(rg *rand.Rand) dataset.Dataset {
			return generator.Shape(rg, p)
		})
		v.Data, v.Generated, v.Generation = e.Data, e.Params, e.Generation
	}

	values := v.Data.X()
	v.Shape = NewShape(values)
	v.Title = l.Sprintf("Skewness: %.2f | Kurtosis: %.2f (excess %.2f)",
		v.Moments.Skewness(), v.Moments.Kurtosis(), v.Moments.ExcessKurtosis())

	if compare && len(values) > 0 {
		rp := referenceParams{Mean: v.Moments.Mean(), StdDev: v.Moments.PopulationStdDev(), N: len(values)}
		name := ShapeDataset(p.Family) + referenceSuffix
		prev, ok := s.Get(name)
		stale := !ok || prev.Params != generator.Params(rp)
		e := s.Resolve(name, rp, regenerate || stale, func(rg *rand.Rand) dataset.Dataset {
			return generator.NormalLike(rg, rp.Mean, rp.StdDev, rp.N)
		})
		ref := NewShape(e.Data.X())
		v.Reference = &ref
	}
	return v
}
