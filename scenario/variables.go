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
	"time"

	"github.com/Fantom-foundation/Statlab/dataset"
	"github.com/Fantom-foundation/Statlab/generator"
	"github.com/Fantom-foundation/Statlab/session"
	"github.com/Fantom-foundation/Statlab/stats"
	"golang.org/x/exp/rand"
)

// ContinuousView is the continuous-variable lesson.
type ContinuousView struct {
	Data      dataset.Dataset
	Generated generator.Params // parameters of the stored sample
	Summary   stats.Summary
	Histogram stats.Histogram
	Title     string
}

// Continuous resolves the continuous-variable lesson.
func (l *Lessons) Continuous(s *session.Store, p generator.ContinuousParams, regenerate bool) ContinuousView {
	p = p.Clamped()
	e := s.Resolve(ContinuousName, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.Continuous(rg, p)
	})
	values := e.Data.X()
	v := ContinuousView{
		Data:      e.Data,
		Generated: e.Params,
		Summary:   stats.Describe(values),
		Histogram: stats.NewHistogram(values, stats.DefaultBins),
	}
	v.Title = l.Sprintf("Mean: %.2f | Standard deviation: %.2f", v.Summary.Mean, v.Summary.Std)
	return v
}

// CategoricalView is a nominal or ordinal lesson.
type CategoricalView struct {
	Levels       []string
	Generated    generator.Params // parameters of the stored sample
	Requested    generator.Params // parameters read from the current input
	Counts       []stats.Count
	Renormalized bool // the probabilities did not sum to one and were rescaled
	Title        string
	Err          error
}

func (l *Lessons) categorical(s *session.Store, name string, p generator.CategoricalParams, ordered, regenerate bool) CategoricalView {
	p = p.Clamped()
	e := s.Resolve(name, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.Categorical(rg, p)
	})
	// the stored sample keeps the levels it was drawn from
	stored, ok := e.Params.(generator.CategoricalParams)
	if !ok {
		stored = p
	}
	v := CategoricalView{Levels: stored.Levels, Generated: e.Params, Requested: p}
	var order []string
	if ordered {
		order = stored.Levels
	}
	v.Counts = stats.Counts(e.Data.Labels(), order)
	v.Title = l.Sprintf("%d observations of %d categories", e.Data.Len(), len(stored.Levels))
	return v
}

// Nominal resolves the nominal-variable lesson from comma separated labels.
func (l *Lessons) Nominal(s *session.Store, labels string, regenerate bool) CategoricalView {
	levels, err := l.parser.Labels(labels)
	if err != nil {
		return CategoricalView{Err: err}
	}
	return l.categorical(s, NominalName, generator.CategoricalParams{Levels: levels}, false, regenerate)
}

// Ordinal resolves the ordinal-variable lesson from labels and their
// probabilities.
func (l *Lessons) Ordinal(s *session.Store, labels, probabilities string, regenerate bool) CategoricalView {
	levels, err := l.parser.Labels(labels)
	if err != nil {
		return CategoricalView{Err: err}
	}
	prob, err := l.parser.Probabilities(probabilities, len(levels))
	if err != nil {
		return CategoricalView{Levels: levels, Err: err}
	}
	v := l.categorical(s, OrdinalName, generator.CategoricalParams{Levels: levels, Weights: prob.Weights}, true, regenerate)
	v.Renormalized = prob.Renormalized
	return v
}

// SeriesView is a lesson plotted over calendar days.
type SeriesView struct {
	Data      dataset.Dataset
	Generated generator.Params // parameters of the stored sample
	Start     time.Time
	Dates     []time.Time // one per distinct day offset, in order
	Title     string
}

// CrossSection resolves the cross-sectional data lesson (X = age, Y = income).
func (l *Lessons) CrossSection(s *session.Store, p generator.CrossSectionalParams, regenerate bool) SeriesView {
	p = p.Clamped()
	e := s.Resolve(CrossSectionName, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.CrossSection(rg, p)
	})
	return SeriesView{
		Data:      e.Data,
		Generated: e.Params,
		Title:     l.Sprintf("%d people observed at one point in time", e.Data.Len()),
	}
}

// TimeSeries resolves the time-series lesson.
func (l *Lessons) TimeSeries(s *session.Store, p generator.TimeSeriesParams, regenerate bool) SeriesView {
	p = p.Clamped()
	e := s.Resolve(TimeSeriesName, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.TimeSeries(rg, p)
	})
	start := p.Start
	if stored, ok := e.Params.(generator.TimeSeriesParams); ok {
		start = stored.Start
	}
	v := SeriesView{Data: e.Data, Generated: e.Params, Start: start, Dates: dates(start, e.Data.X())}
	v.Title = l.Sprintf("Price over %d days", len(v.Dates))
	return v
}

// Panel resolves the panel-data lesson; every entity is one group.
func (l *Lessons) Panel(s *session.Store, p generator.PanelParams, regenerate bool) SeriesView {
	p = p.Clamped()
	e := s.Resolve(PanelName, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.Panel(rg, p)
	})
	groups := e.Data.Groups()
	var days []float64
	if len(groups) > 0 {
		days = e.Data.Group(groups[0]).X()
	}
	v := SeriesView{Data: e.Data, Generated: e.Params, Start: generator.DefaultStart, Dates: dates(generator.DefaultStart, days)}
	v.Title = l.Sprintf("GDP of %d entities over %d days", len(groups), len(v.Dates))
	return v
}

func dates(start time.Time, offsets []float64) []time.Time {
	res := make([]time.Time, len(offsets))
	for i, o := range offsets {
		res[i] = generator.Date(start, o)
	}
	return res
}
