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

package visualizer

import (
	"fmt"
	"math"

	"github.com/Fantom-foundation/Statlab/dataset"
	"github.com/Fantom-foundation/Statlab/stats"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/floats"
)

// fitPoints is the number of points used to draw a fitted curve.
const fitPoints = 50

// defaultSeries names the series of ungrouped data.
const defaultSeries = "Data"

// globalOptions returns the options shared by every chart of a lesson page.
func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "500px",
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true, Right: "10%"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// fitLine is a fitted curve drawn over a scatter. A quadratic fit is
// evaluated at X² instead of X.
type fitLine struct {
	name      string
	fit       stats.Fit
	quadratic bool
	from, to  float64
}

// convertScatterData converts dataset points to chart points.
func convertScatterData(d dataset.Dataset) []opts.ScatterData {
	items := make([]opts.ScatterData, 0, d.Len())
	for _, p := range d.Points() {
		items = append(items, opts.ScatterData{Value: [2]float64{p.X, p.Y}, SymbolSize: 6})
	}
	return items
}

// convertFitData samples a fitted curve over its range.
func convertFitData(f fitLine) []opts.LineData {
	xs := floats.Span(make([]float64, fitPoints), f.from, f.to)
	items := make([]opts.LineData, 0, len(xs))
	for _, x := range xs {
		at := x
		if f.quadratic {
			at = x * x
		}
		items = append(items, opts.LineData{Value: [2]float64{x, f.fit.At(at)}})
	}
	return items
}

// span returns the range of the X values of a dataset.
func span(d dataset.Dataset) (float64, float64) {
	x := d.X()
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}

// newScatterChart creates a scatter with one series per group and the
// given fitted curves on top.
func newScatterChart(title, subtitle, xName, yName string, d dataset.Dataset, fits ...fitLine) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(append(globalOptions(title, subtitle),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value", Scale: true}),
	)...)
	for _, g := range d.Groups() {
		name := g
		if name == "" {
			name = defaultSeries
		}
		scatter.AddSeries(name, convertScatterData(d.Group(g)))
	}
	if len(fits) > 0 {
		line := charts.NewLine()
		for _, f := range fits {
			if math.IsNaN(f.fit.Slope) || math.IsNaN(f.fit.Intercept) {
				continue
			}
			line.AddSeries(f.name, convertFitData(f))
		}
		scatter.Overlap(line)
	}
	return scatter
}

// formatBins labels bins by their centers.
func formatBins(h stats.Histogram) []string {
	centers := h.Centers()
	labels := make([]string, len(centers))
	for i, c := range centers {
		labels[i] = fmt.Sprintf("%.1f", c)
	}
	return labels
}

// newHistogramChart creates a bar chart of a histogram, showing either raw
// counts or densities.
func newHistogramChart(title, subtitle string, h stats.Histogram, density bool) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(title, subtitle)...)
	values, name := h.Counts, "Frequency"
	if density {
		values, name = h.Density, "Density"
	}
	items := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.BarData{Value: v})
	}
	bar.SetXAxis(formatBins(h)).AddSeries(name, items)
	return bar
}

// boxSeries is one box of a box plot.
type boxSeries struct {
	name    string
	summary stats.Summary
}

// newBoxChart creates a box plot from five-number summaries.
func newBoxChart(title, subtitle string, boxes ...boxSeries) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(globalOptions(title, subtitle)...)
	names := make([]string, 0, len(boxes))
	items := make([]opts.BoxPlotData, 0, len(boxes))
	for _, b := range boxes {
		names = append(names, b.name)
		items = append(items, opts.BoxPlotData{Value: b.summary.FiveNumber()})
	}
	box.SetXAxis(names).AddSeries("Summary", items)
	return box
}

// newCountChart creates a bar chart of category frequencies.
func newCountChart(title, subtitle string, counts []stats.Count) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(title, subtitle)...)
	labels := make([]string, 0, len(counts))
	items := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Label)
		items = append(items, opts.BarData{Value: c.N})
	}
	bar.SetXAxis(labels).AddSeries("Count", items)
	return bar
}

// newValuesChart plots a typed list in input order.
func newValuesChart(title, subtitle string, values []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(title, subtitle)...)
	labels := make([]string, len(values))
	items := make([]opts.BarData, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprint(i + 1)
		items[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(labels).AddSeries("Value", items)
	return bar
}

// newSeriesChart creates a line chart with one line per group over the
// given category labels, e.g. dates.
func newSeriesChart(title, subtitle string, labels []string, d dataset.Dataset) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(globalOptions(title, subtitle),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Scale: true}),
	)...)
	line.SetXAxis(labels)
	for _, g := range d.Groups() {
		name := g
		if name == "" {
			name = defaultSeries
		}
		y := d.Group(g).Y()
		items := make([]opts.LineData, len(y))
		for i, v := range y {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, items)
	}
	return line
}
