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
	"github.com/Fantom-foundation/Statlab/generator"
	"github.com/Fantom-foundation/Statlab/session"
	"github.com/Fantom-foundation/Statlab/stats"
	"golang.org/x/exp/rand"
)

// ScatterView is a scatter lesson: the stored sample, the parameters it
// was generated with and its summary.
type ScatterView struct {
	Data        dataset.Dataset
	Generated   generator.Params // parameters of the stored sample
	Generation  uint64
	Correlation float64
	Fit         stats.Fit
	Title       string
}

// GroupView summarizes one group of a grouped scatter.
type GroupView struct {
	Name        string
	Correlation float64
	Fit         stats.Fit
}

// SimpsonView is the Simpson's-paradox lesson.
type SimpsonView struct {
	ScatterView
	Groups []GroupView
}

func (l *Lessons) scatter(e session.Entry) ScatterView {
	x, y := e.Data.X(), e.Data.Y()
	return ScatterView{
		Data:        e.Data,
		Generated:   e.Params,
		Generation:  e.Generation,
		Correlation: stats.Correlation(x, y),
		Fit:         stats.LinearFit(x, y),
	}
}

// Linear resolves the correlated-pair lesson.
func (l *Lessons) Linear(s *session.Store, p generator.LinearParams, regenerate bool) ScatterView {
	p = p.Clamped()
	e := s.Resolve(LinearName, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.Correlated(rg, p)
	})
	v := l.scatter(e)
	v.Title = l.Sprintf("Sample Correlation: %.2f", v.Correlation)
	return v
}

// Nonlinear resolves the U-shape lesson. The fit is quadratic in X.
func (l *Lessons) Nonlinear(s *session.Store, p generator.CurvedParams, regenerate bool) ScatterView {
	p = p.Clamped()
	e := s.Resolve(NonlinearName, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.Curved(rg, p)
	})
	v := l.scatter(e)
	v.Fit = stats.QuadraticFit(e.Data.X(), e.Data.Y())
	v.Title = l.Sprintf("Correlation: %.2f", v.Correlation)
	return v
}

// Simpson resolves the Simpson's-paradox lesson.
func (l *Lessons) Simpson(s *session.Store, p generator.SimpsonParams, regenerate bool) SimpsonView {
	p = p.Clamped()
	e := s.Resolve(SimpsonName, p, regenerate, func(rg *rand.Rand) dataset.Dataset {
		return generator.Simpson(rg, p)
	})
	v := SimpsonView{ScatterView: l.scatter(e)}
	for _, name := range e.Data.Groups() {
		g := e.Data.Group(name)
		x, y := g.X(), g.Y()
		v.Groups = append(v.Groups, GroupView{
			Name:        name,
			Correlation: stats.Correlation(x, y),
			Fit:         stats.LinearFit(x, y),
		})
	}
	v.Title = l.Sprintf("Overall Correlation: %.2f", v.Correlation)
	for _, g := range v.Groups {
		v.Title += l.Sprintf(" | %s: %.2f", g.Name, g.Correlation)
	}
	return v
}
