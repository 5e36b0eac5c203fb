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

// Package report prints lesson statistics on a terminal.
package report

import (
	"fmt"
	"io"
	"log"

	"github.com/Fantom-foundation/Statlab/scenario"
	"github.com/Fantom-foundation/Statlab/stats"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer writes statistics formatted for a language.
type Printer struct {
	w       io.Writer
	m       *message.Printer
	bold    func(format string, a ...interface{}) string
	colored func(format string, a ...interface{}) string
}

// New creates a printer writing to w.
func New(w io.Writer, lang language.Tag) *Printer {
	return &Printer{
		w:       w,
		m:       message.NewPrinter(lang),
		bold:    color.New(color.Bold).SprintfFunc(),
		colored: color.New(color.FgBlue, color.Bold).SprintfFunc(),
	}
}

func (p *Printer) num(v float64) string {
	return p.m.Sprintf("%.4f", v)
}

// Describe prints the central tendency, dispersion and shape of a list.
func (p *Printer) Describe(values []float64) {
	m := stats.NewMoments(values...)
	mode, count, _ := stats.Mode(values)

	p.output("Count:\t\t%s\n", p.bold(p.m.Sprintf("%d", len(values))))
	p.output("Mean:\t\t%s\n", p.bold(p.num(stats.Mean(values))))
	p.output("Median:\t\t%s\n", p.bold(p.num(stats.Median(values))))
	p.output("Mode:\t\t%s (%d×)\n", p.bold(p.m.Sprintf("%v", mode)), count)
	p.output("Variance:\t%s\n", p.bold(p.num(stats.Variance(values))))
	p.output("Std Dev:\t%s\n", p.bold(p.num(stats.StdDev(values))))
	p.output("Skewness:\t%s\n", p.bold(p.num(m.Skewness())))
	p.output("Kurtosis:\t%s (excess %s)\n", p.bold(p.num(m.Kurtosis())), p.num(m.ExcessKurtosis()))
}

// Quartet prints the summary statistics of all Anscombe sets side by side.
func (p *Printer) Quartet(sets []scenario.AnscombeSet) {
	tbl := tablewriter.NewWriter(p.w)
	tbl.SetHeader([]string{"Set", "Mean X", "Mean Y", "Var X", "Var Y", "Corr", "Slope", "Intercept"})
	tbl.SetBorder(true)
	for _, s := range sets {
		tbl.Append([]string{
			s.Name,
			p.num(s.MeanX), p.num(s.MeanY),
			p.num(s.VarianceX), p.num(s.VarianceY),
			p.num(s.Correlation), p.num(s.Fit.Slope), p.num(s.Fit.Intercept),
		})
	}
	tbl.Render()
}

// Scatter prints the summary of a generated scatter.
func (p *Printer) Scatter(v scenario.ScatterView) {
	p.output("%s\n", p.colored(v.Title))
	p.output("Parameters:\t%s\n", v.Generated)
	p.output("Points:\t\t%s\n", p.bold(p.m.Sprintf("%d", v.Data.Len())))
	p.output("Correlation:\t%s\n", p.bold(p.num(v.Correlation)))
	p.output("Fit:\t\t%s\n", p.bold(p.m.Sprintf("y = %.4f·x + %.4f (R² %.4f)", v.Fit.Slope, v.Fit.Intercept, v.Fit.RSquared)))
}

// Simpson prints the pooled and per-group trends.
func (p *Printer) Simpson(v scenario.SimpsonView) {
	p.Scatter(v.ScatterView)
	tbl := tablewriter.NewWriter(p.w)
	tbl.SetHeader([]string{"Group", "Correlation", "Slope", "Intercept"})
	tbl.SetBorder(true)
	for _, g := range v.Groups {
		tbl.Append([]string{g.Name, p.num(g.Correlation), p.num(g.Fit.Slope), p.num(g.Fit.Intercept)})
	}
	tbl.Render()
}

// Shape prints the moments of a distribution-shape sample and its reading.
func (p *Printer) Shape(v scenario.ShapeView) {
	p.output("%s\n", p.colored(v.Title))
	tbl := tablewriter.NewWriter(p.w)
	header := []string{"", string(v.Family)}
	if v.Reference != nil {
		header = append(header, "normal")
	}
	tbl.SetHeader(header)
	tbl.SetBorder(true)
	shapes := []scenario.Shape{v.Shape}
	if v.Reference != nil {
		shapes = append(shapes, *v.Reference)
	}
	rows := []struct {
		name string
		get  func(s scenario.Shape) string
	}{
		{"count", func(s scenario.Shape) string { return p.m.Sprintf("%d", s.Summary.Count) }},
		{"mean", func(s scenario.Shape) string { return p.num(s.Moments.Mean()) }},
		{"median", func(s scenario.Shape) string { return p.num(s.Summary.Median) }},
		{"std", func(s scenario.Shape) string { return p.num(s.Moments.PopulationStdDev()) }},
		{"skewness", func(s scenario.Shape) string { return p.num(s.Moments.Skewness()) }},
		{"kurtosis", func(s scenario.Shape) string { return p.num(s.Moments.Kurtosis()) }},
		{"excess kurtosis", func(s scenario.Shape) string { return p.num(s.Moments.ExcessKurtosis()) }},
		{"skew", func(s scenario.Shape) string { return s.Skew }},
		{"tails", func(s scenario.Shape) string { return s.Tails }},
	}
	for _, r := range rows {
		line := []string{r.name}
		for _, s := range shapes {
			line = append(line, r.get(s))
		}
		tbl.Append(line)
	}
	tbl.Render()
}

// output the given message with formatting.
func (p *Printer) output(format string, a ...any) {
	_, err := fmt.Fprintf(p.w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
