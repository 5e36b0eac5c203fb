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
	"net/http"
	"strconv"

	"github.com/Fantom-foundation/Statlab/generator"
	"github.com/Fantom-foundation/Statlab/scenario"
	"github.com/Fantom-foundation/Statlab/stats"
	"github.com/go-echarts/go-echarts/v2/components"
)

const regenerateLabel = "Generate New Data"

// dateLayout formats the dates of the time-series lessons.
const dateLayout = "2006-01-02"

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rangeControl(name, label string, value, min, max, step float64) control {
	return control{
		Kind:  "range",
		Name:  name,
		Label: label,
		Value: formatFloat(value),
		Min:   formatFloat(min),
		Max:   formatFloat(max),
		Step:  formatFloat(step),
	}
}

func textControl(name, label, value string) control {
	return control{Kind: "text", Name: name, Label: label, Value: value}
}

// num formats a statistic for the page language.
func (s *Server) num(v float64) string {
	return s.lessons.Sprintf("%.2f", v)
}

// staleNotice tells the user that the shown sample predates the current
// controls.
func (s *Server) staleNotice(p *panel, generated, requested generator.Params) {
	if generated == nil || generated.String() == requested.String() {
		return
	}
	p.Notices = append(p.Notices, "Showing data generated with "+generated.String()+
		". Press "+regenerateLabel+" to sample with "+requested.String()+".")
}

// renderLinear renders the correlated-pair lesson.
func (s *Server) renderLinear(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	store := s.store(w, r)
	params := generator.LinearParams{Rho: q.float("rho", 0), N: s.cfg.SampleSize}.Clamped()
	v := s.lessons.Linear(store, params, q.regenerate(scenario.LinearName))

	p := newPanel(linearRef, "Linear Correlation",
		"Pick a target correlation and draw a sample. The sample correlation scatters around the target.")
	p.Controls = []control{rangeControl("rho", "Target correlation (ρ)", params.Rho, -1, 1, 0.1)}
	p.Buttons = []button{{scenario.LinearName, regenerateLabel}}
	s.staleNotice(&p, v.Generated, params)
	p.Summary = v.Title
	p.Tables = []table{{Rows: [][]string{
		{"Sample correlation", s.num(v.Correlation)},
		{"Slope", s.num(v.Fit.Slope)},
		{"Intercept", s.num(v.Fit.Intercept)},
		{"Points", strconv.Itoa(v.Data.Len())},
	}}}
	lo, hi := span(v.Data)
	s.write(w, p, newScatterChart(v.Title, v.Generated.String(), "X", "Y", v.Data,
		fitLine{name: "Least squares fit", fit: v.Fit, from: lo, to: hi}))
}

// renderNonlinear renders the U-shape lesson.
func (s *Server) renderNonlinear(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	store := s.store(w, r)
	params := generator.CurvedParams{Curvature: q.float("curvature", 1), N: s.cfg.SampleSize}.Clamped()
	v := s.lessons.Nonlinear(store, params, q.regenerate(scenario.NonlinearName))

	p := newPanel(nonlinearRef, "Nonlinear Relationships",
		"Y depends strongly on X, yet the correlation is close to zero. Correlation only measures linear association.")
	p.Controls = []control{rangeControl("curvature", "Curvature", params.Curvature, generator.MinCurvature, generator.MaxCurvature, 0.1)}
	p.Buttons = []button{{scenario.NonlinearName, regenerateLabel}}
	s.staleNotice(&p, v.Generated, params)
	p.Summary = v.Title
	p.Tables = []table{{Rows: [][]string{
		{"Correlation", s.num(v.Correlation)},
		{"Quadratic fit R²", s.num(v.Fit.RSquared)},
		{"Points", strconv.Itoa(v.Data.Len())},
	}}}
	lo, hi := span(v.Data)
	s.write(w, p, newScatterChart(v.Title, v.Generated.String(), "X", "Y", v.Data,
		fitLine{name: "Quadratic fit", fit: v.Fit, quadratic: true, from: lo, to: hi}))
}

// renderSimpson renders the Simpson's-paradox lesson.
func (s *Server) renderSimpson(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	store := s.store(w, r)
	params := generator.SimpsonParams{SlopeDiff: q.float("slope", -1), N: s.cfg.SampleSize}.Clamped()
	v := s.lessons.Simpson(store, params, q.regenerate(scenario.SimpsonName))

	p := newPanel(simpsonRef, "Simpson's Paradox",
		"A trend that holds inside every group can vanish or reverse once the groups are pooled.")
	p.Controls = []control{rangeControl("slope", "Slope of Group B", params.SlopeDiff, generator.MinSlopeDiff, generator.MaxSlopeDiff, 0.1)}
	p.Buttons = []button{{scenario.SimpsonName, regenerateLabel}}
	s.staleNotice(&p, v.Generated, params)
	p.Summary = v.Title

	rows := [][]string{{"All data", s.num(v.Correlation), s.num(v.Fit.Slope)}}
	lo, hi := span(v.Data)
	fits := []fitLine{{name: "Overall trend", fit: v.Fit, from: lo, to: hi}}
	for _, g := range v.Groups {
		rows = append(rows, []string{g.Name, s.num(g.Correlation), s.num(g.Fit.Slope)})
		glo, ghi := span(v.Data.Group(g.Name))
		fits = append(fits, fitLine{name: g.Name + " trend", fit: g.Fit, from: glo, to: ghi})
	}
	p.Tables = []table{{Header: []string{"", "Correlation", "Slope"}, Rows: rows}}
	s.write(w, p, newScatterChart(v.Title, v.Generated.String(), "X", "Y", v.Data, fits...))
}

// renderShape renders the distribution-shape lesson.
func (s *Server) renderShape(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	store := s.store(w, r)
	family, err := generator.ParseFamily(q.text("family", string(generator.Normal)))
	if err != nil {
		family = generator.Normal
	}
	params := generator.ShapeParams{Family: family, N: q.int("n", generator.DefaultShapeSamples)}.Clamped()
	custom := q.text("data", scenario.DefaultCustom)
	compare := q.checked("compare")
	v := s.lessons.DistributionShape(store, params, custom, compare, q.regenerate(scenario.ShapeName))

	p := newPanel(shapeRef, "Distribution Shape",
		"Skewness measures asymmetry, kurtosis measures how heavy the tails are compared to a normal distribution (kurtosis 3).")
	options := make([]option, len(generator.Families))
	for i, f := range generator.Families {
		options[i] = option{Value: string(f), Label: string(f)}
	}
	p.Controls = []control{
		{Kind: "select", Name: "family", Label: "Distribution", Value: string(family), Options: options},
		rangeControl("n", "Sample size", float64(params.N), generator.MinShapeSamples, generator.MaxShapeSamples, 100),
		textControl("data", "Custom values (comma separated)", custom),
		{Kind: "checkbox", Name: "compare", Label: "Compare with a normal distribution", Checked: compare},
	}
	p.Buttons = []button{{scenario.ShapeName, regenerateLabel}}
	if v.Err != nil {
		s.reportInput(&p, v.Err)
		s.write(w, p)
		return
	}
	s.staleNotice(&p, v.Generated, params)
	p.Summary = v.Title

	header := []string{"", string(v.Family)}
	rows := [][]string{
		{"Mean", s.num(v.Moments.Mean())},
		{"Median", s.num(v.Summary.Median)},
		{"Standard deviation", s.num(v.Moments.PopulationStdDev())},
		{"Skewness", s.num(v.Moments.Skewness())},
		{"Kurtosis", s.num(v.Moments.Kurtosis())},
		{"Excess kurtosis", s.num(v.Moments.ExcessKurtosis())},
		{"Skew", v.Skew},
		{"Tails", v.Tails},
	}
	boxes := []boxSeries{{string(v.Family), v.Summary}}
	charts := []components.Charter{newHistogramChart(v.Title, "Histogram", v.Histogram, false)}
	if ref := v.Reference; ref != nil {
		header = append(header, "normal")
		refCol := []string{
			s.num(ref.Moments.Mean()),
			s.num(ref.Summary.Median),
			s.num(ref.Moments.PopulationStdDev()),
			s.num(ref.Moments.Skewness()),
			s.num(ref.Moments.Kurtosis()),
			s.num(ref.Moments.ExcessKurtosis()),
			ref.Skew,
			ref.Tails,
		}
		for i := range rows {
			rows[i] = append(rows[i], refCol[i])
		}
		boxes = append(boxes, boxSeries{"normal", ref.Summary})
		charts = append(charts, newHistogramChart("Normal distribution", "Same mean and standard deviation", ref.Histogram, false))
	}
	charts = append(charts, newBoxChart("Box Plot", "Minimum, quartiles and maximum", boxes...))
	p.Tables = []table{{Header: header, Rows: rows}}
	s.write(w, p, charts...)
}

// anscombeSelect is the control choosing one Anscombe set or all four.
func anscombeSelect(selected int) control {
	options := []option{{Value: "0", Label: "All datasets"}}
	for i := 0; i < scenario.AnscombeSets; i++ {
		options = append(options, option{Value: strconv.Itoa(i + 1), Label: scenario.AnscombeName(i)})
	}
	return control{Kind: "select", Name: "set", Label: "Anscombe dataset", Value: strconv.Itoa(selected), Options: options}
}

// anscombeCharts plots the selected Anscombe sets with their fits.
func anscombeCharts(v scenario.AnscombeView) []components.Charter {
	sets := v.Sets
	if v.Selected != nil {
		sets = []scenario.AnscombeSet{*v.Selected}
	}
	res := make([]components.Charter, 0, len(sets))
	for _, set := range sets {
		lo, hi := span(set.Data)
		res = append(res, newScatterChart(set.Name, "", "X", "Y", set.Data,
			fitLine{name: "Linear fit", fit: set.Fit, from: lo, to: hi}))
	}
	return res
}

// renderAnscombe renders Anscombe's quartet.
func (s *Server) renderAnscombe(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	selected := q.int("set", 0)
	v := s.lessons.AnscombeQuartet(selected)

	p := newPanel(anscombeRef, "Anscombe's Quartet",
		"Four datasets with nearly identical summary statistics and very different pictures.")
	p.Controls = []control{anscombeSelect(selected)}
	p.Summary = v.Title
	rows := make([][]string, 0, len(v.Sets))
	for _, set := range v.Sets {
		rows = append(rows, []string{set.Name,
			s.num(set.MeanX), s.num(set.MeanY),
			s.num(set.VarianceX), s.num(set.VarianceY),
			s.num(set.Correlation), s.num(set.Fit.Slope), s.num(set.Fit.Intercept)})
	}
	p.Tables = []table{{
		Header: []string{"", "Mean X", "Mean Y", "Variance X", "Variance Y", "Correlation", "Slope", "Intercept"},
		Rows:   rows,
	}}
	s.write(w, p, anscombeCharts(v)...)
}

// renderCentralTendency renders the mean, median and mode lesson.
func (s *Server) renderCentralTendency(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	text := q.text("values", scenario.DefaultList)
	selected := q.int("set", 0)
	v := s.lessons.CentralTendency(text)
	av := s.lessons.AnscombeQuartet(selected)

	p := newPanel(centralTendencyRef, "Central Tendency",
		"Mean, median and mode describe the center of a sample. Outliers pull the mean but hardly move the median.")
	p.Controls = []control{textControl("values", "Values (comma separated)", text), anscombeSelect(selected)}

	var charts []components.Charter
	if v.Err != nil {
		s.reportInput(&p, v.Err)
	} else {
		p.Summary = v.Title
		p.Tables = append(p.Tables, table{Rows: [][]string{
			{"Mean", s.num(v.Mean)},
			{"Median", s.num(v.Median)},
			{"Mode", s.num(v.Mode) + " (" + strconv.Itoa(v.ModeCount) + "×)"},
		}})
		charts = append(charts, newValuesChart(v.Title, "Values in input order", v.Values))
	}

	rows := [][]string{}
	for _, set := range av.Sets {
		y := set.Data.Y()
		mode, _, _ := stats.Mode(y)
		rows = append(rows, []string{set.Name, s.num(stats.Mean(y)), s.num(stats.Median(y)), s.num(mode)})
	}
	p.Tables = append(p.Tables, table{Caption: "Y of Anscombe's quartet", Header: []string{"", "Mean", "Median", "Mode"}, Rows: rows})
	s.write(w, p, append(charts, anscombeCharts(av)...)...)
}

// renderDispersion renders the variance and covariance lesson.
func (s *Server) renderDispersion(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	text := q.text("values", scenario.DefaultList)
	second := q.text("second", scenario.DefaultSecondList)
	v := s.lessons.Dispersion(text, second)

	p := newPanel(dispersionRef, "Dispersion",
		"Variance and standard deviation measure the spread of a sample; covariance measures how two samples vary together.")
	p.Controls = []control{
		textControl("values", "Values (comma separated)", text),
		textControl("second", "Second variable (same length)", second),
	}
	if v.Err != nil {
		s.reportInput(&p, v.Err)
		s.write(w, p)
		return
	}
	p.Summary = v.Title
	rows := [][]string{
		{"Variance", s.num(v.Variance)},
		{"Standard deviation", s.num(v.StdDev)},
	}
	charts := []components.Charter{newBoxChart("Spread", "Minimum, quartiles and maximum",
		boxSeries{"Values", stats.Describe(v.Values)})}
	if v.PairErr != nil {
		s.reportInput(&p, v.PairErr)
	} else {
		rows = append(rows, []string{"Covariance", s.num(v.Covariance)})
		charts = append(charts, newScatterChart("Covariance", "First against second variable", "First", "Second", v.Pair))
	}
	p.Tables = []table{{Rows: rows}}
	s.write(w, p, charts...)
}

// describeTable renders a Describe summary the way a data frame prints it.
func (s *Server) describeTable(caption string, sum stats.Summary) table {
	return table{Caption: caption, Rows: [][]string{
		{"count", strconv.Itoa(sum.Count)},
		{"mean", s.num(sum.Mean)},
		{"std", s.num(sum.Std)},
		{"min", s.num(sum.Min)},
		{"25%", s.num(sum.Q1)},
		{"50%", s.num(sum.Median)},
		{"75%", s.num(sum.Q3)},
		{"max", s.num(sum.Max)},
	}}
}

// renderVariables renders the continuous, nominal and ordinal variable lessons.
func (s *Server) renderVariables(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	store := s.store(w, r)
	cp := generator.ContinuousParams{Mean: q.float("mean", 50), StdDev: q.float("sd", 10)}.Clamped()
	categories := q.text("categories", scenario.DefaultCategories)
	levels := q.text("levels", scenario.DefaultLevels)
	probabilities := q.text("probabilities", scenario.DefaultWeights)

	p := newPanel(variablesRef, "Variables",
		"Continuous variables take any value in a range, nominal variables name categories and ordinal variables rank them.")
	p.Controls = []control{
		rangeControl("mean", "Mean", cp.Mean, 0, 100, 1),
		rangeControl("sd", "Standard deviation", cp.StdDev, 0.1, 20, 0.1),
		textControl("categories", "Nominal categories", categories),
		textControl("levels", "Ordinal levels", levels),
		textControl("probabilities", "Level probabilities", probabilities),
	}
	p.Buttons = []button{
		{scenario.ContinuousName, "New continuous sample"},
		{scenario.NominalName, "New nominal sample"},
		{scenario.OrdinalName, "New ordinal sample"},
	}

	cv := s.lessons.Continuous(store, cp, q.regenerate(scenario.ContinuousName))
	s.staleNotice(&p, cv.Generated, cp)
	p.Summary = cv.Title
	p.Tables = append(p.Tables, s.describeTable("Continuous variable", cv.Summary))
	charts := []components.Charter{newHistogramChart("Continuous Variable", cv.Title, cv.Histogram, true)}

	nv := s.lessons.Nominal(store, categories, q.regenerate(scenario.NominalName))
	if nv.Err != nil {
		s.reportInput(&p, nv.Err)
	} else {
		s.staleNotice(&p, nv.Generated, nv.Requested)
		charts = append(charts, newCountChart("Nominal Variable", nv.Title, nv.Counts))
	}

	ov := s.lessons.Ordinal(store, levels, probabilities, q.regenerate(scenario.OrdinalName))
	if ov.Err != nil {
		s.reportInput(&p, ov.Err)
	} else {
		s.staleNotice(&p, ov.Generated, ov.Requested)
		if ov.Renormalized {
			p.Notices = append(p.Notices, "The level probabilities did not sum to 1 and were rescaled.")
		}
		charts = append(charts, newCountChart("Ordinal Variable", ov.Title, ov.Counts))
	}
	s.write(w, p, charts...)
}

// renderDataTypes renders the cross-sectional, time-series and panel lessons.
func (s *Server) renderDataTypes(w http.ResponseWriter, r *http.Request) {
	q := query{r.URL.Query()}
	store := s.store(w, r)
	cp := generator.CrossSectionalParams{N: q.int("people", 100)}.Clamped()
	tp := generator.TimeSeriesParams{Days: q.int("days", 100)}.Clamped()
	pp := generator.PanelParams{Entities: q.int("entities", 3), Days: q.int("panel-days", 100)}.Clamped()

	p := newPanel(dataTypesRef, "Data Types",
		"Cross-sectional data observes many subjects once, time series observe one subject over time and panel data observe many subjects over time.")
	p.Controls = []control{
		rangeControl("people", "Cross-section size", float64(cp.N), generator.MinCrossSectional, generator.MaxCrossSectional, 10),
		rangeControl("days", "Time-series days", float64(tp.Days), generator.MinDays, generator.MaxDays, 1),
		rangeControl("entities", "Panel entities", float64(pp.Entities), generator.MinEntities, generator.MaxEntities, 1),
		rangeControl("panel-days", "Panel days", float64(pp.Days), generator.MinDays, generator.MaxDays, 1),
	}
	p.Buttons = []button{
		{scenario.CrossSectionName, "New cross-section"},
		{scenario.TimeSeriesName, "New time series"},
		{scenario.PanelName, "New panel"},
	}

	cv := s.lessons.CrossSection(store, cp, q.regenerate(scenario.CrossSectionName))
	tv := s.lessons.TimeSeries(store, tp, q.regenerate(scenario.TimeSeriesName))
	pv := s.lessons.Panel(store, pp, q.regenerate(scenario.PanelName))
	s.staleNotice(&p, cv.Generated, cp)
	s.staleNotice(&p, tv.Generated, tp)
	s.staleNotice(&p, pv.Generated, pp)

	head := [][]string{}
	for i, pt := range cv.Data.Points() {
		if i == 5 {
			break
		}
		head = append(head, []string{strconv.Itoa(i + 1), strconv.Itoa(int(pt.X)), strconv.Itoa(int(pt.Y))})
	}
	p.Tables = []table{{Caption: "Cross-sectional data (first rows)", Header: []string{"", "Age", "Income"}, Rows: head}}

	s.write(w, p,
		newScatterChart("Cross-Sectional Data", cv.Title, "Age", "Income", cv.Data),
		newSeriesChart("Time Series", tv.Title, formatDates(tv), tv.Data),
		newSeriesChart("Panel Data", pv.Title, formatDates(pv), pv.Data),
	)
}

func formatDates(v scenario.SeriesView) []string {
	res := make([]string, len(v.Dates))
	for i, d := range v.Dates {
		res[i] = d.Format(dateLayout)
	}
	return res
}
