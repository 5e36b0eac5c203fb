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
	"bytes"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
)

// panelHtml is the lesson header rendered above the charts: navigation,
// the controls form, notices, input errors and summary tables.
const panelHtml = `
<style>
  .statlab { font-family: sans-serif; max-width: 900px; margin: 1em auto; }
  .statlab nav a { margin-right: 1em; }
  .statlab .error { background: #fdecea; border: 1px solid #f5c2c0; padding: .5em; margin: .5em 0; }
  .statlab .notice { background: #fff8e1; border: 1px solid #ffe08a; padding: .5em; margin: .5em 0; }
  .statlab table { border-collapse: collapse; margin: .5em 0; }
  .statlab td, .statlab th { border: 1px solid #ccc; padding: .2em .6em; text-align: right; }
  .statlab label { display: block; margin: .3em 0; }
</style>
<div class="statlab">
  <nav><a href="/">Statlab</a>{{range .Nav}}<a href="/{{.Ref}}">{{.Title}}</a>{{end}}</nav>
  <h1>{{.Heading}}</h1>
  {{if .Intro}}<p>{{.Intro}}</p>{{end}}
  <form method="get" action="/{{.Ref}}">
    {{range .Controls}}
    <label>{{.Label}}
      {{if eq .Kind "range"}}<input type="range" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}" oninput="this.nextElementSibling.value=this.value"><output>{{.Value}}</output>
      {{else if eq .Kind "select"}}<select name="{{.Name}}">{{$v := .Value}}{{range .Options}}<option value="{{.Value}}"{{if eq .Value $v}} selected{{end}}>{{.Label}}</option>{{end}}</select>
      {{else if eq .Kind "checkbox"}}<input type="checkbox" name="{{.Name}}" value="on"{{if .Checked}} checked{{end}}>
      {{else}}<input type="text" name="{{.Name}}" value="{{.Value}}" size="60">{{end}}
    </label>
    {{end}}
    <button type="submit">Update</button>
    {{range .Buttons}}<button type="submit" name="regenerate" value="{{.Value}}">{{.Label}}</button>{{end}}
  </form>
  {{range .Errors}}<div class="error">{{.}}</div>{{end}}
  {{range .Notices}}<div class="notice">{{.}}</div>{{end}}
  {{if .Summary}}<h2>{{.Summary}}</h2>{{end}}
  {{range .Tables}}
  <table>
    {{if .Caption}}<caption>{{.Caption}}</caption>{{end}}
    {{if .Header}}<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>{{end}}
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
  </table>
  {{end}}
</div>
`

var panelTemplate = template.Must(template.New("panel").Parse(panelHtml))

// option is one entry of a select control.
type option struct {
	Value, Label string
}

// control is one input of a lesson form.
type control struct {
	Kind           string // "range", "select", "checkbox" or "text"
	Name, Label    string
	Value          string
	Min, Max, Step string
	Options        []option
	Checked        bool
}

// button regenerates the named dataset.
type button struct {
	Value, Label string
}

// table is a summary table below the form.
type table struct {
	Caption string
	Header  []string
	Rows    [][]string
}

// panel is the non-chart part of a lesson page.
type panel struct {
	Nav      []lesson
	Ref      string
	Heading  string
	Intro    string
	Controls []control
	Buttons  []button
	Errors   []string
	Notices  []string
	Summary  string
	Tables   []table
}

// renderPanel renders the lesson header as HTML.
func renderPanel(p panel) (string, error) {
	var buf bytes.Buffer
	if err := panelTemplate.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderLesson writes a full lesson page: the panel spliced right after
// the opening body tag of the rendered chart page.
func renderLesson(w io.Writer, p panel, charts ...components.Charter) error {
	header, err := renderPanel(p)
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.PageTitle = "Statlab: " + p.Heading
	page.AddCharts(charts...)
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return err
	}
	html := buf.String()
	if strings.Contains(html, "<body>") {
		html = strings.Replace(html, "<body>", "<body>"+header, 1)
	} else {
		html = header + html
	}
	_, err = io.WriteString(w, html)
	return err
}
