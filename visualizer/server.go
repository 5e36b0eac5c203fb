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

// Package visualizer serves the interactive lessons as web pages.
package visualizer

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Fantom-foundation/Statlab/input"
	"github.com/Fantom-foundation/Statlab/logger"
	"github.com/Fantom-foundation/Statlab/metrics"
	"github.com/Fantom-foundation/Statlab/scenario"
	"github.com/Fantom-foundation/Statlab/session"
	"github.com/Fantom-foundation/Statlab/utils"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/klauspost/compress/gzhttp"
)

// HTML references for the rendered pages.
const linearRef = "linear-correlation"
const nonlinearRef = "nonlinear"
const simpsonRef = "simpson"
const shapeRef = "distribution-shape"
const anscombeRef = "anscombe"
const centralTendencyRef = "central-tendency"
const dispersionRef = "dispersion"
const variablesRef = "variables"
const dataTypesRef = "data-types"
const metricsRef = "metrics"

// CookieName is the cookie carrying the session id.
const CookieName = "statlab_session"

// lesson is an entry of the navigation.
type lesson struct {
	Ref, Title string
}

var lessons = []lesson{
	{variablesRef, "Variables"},
	{dataTypesRef, "Data Types"},
	{centralTendencyRef, "Central Tendency"},
	{dispersionRef, "Dispersion"},
	{linearRef, "Linear Correlation"},
	{nonlinearRef, "Nonlinear Relationships"},
	{simpsonRef, "Simpson's Paradox"},
	{shapeRef, "Distribution Shape"},
	{anscombeRef, "Anscombe's Quartet"},
}

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Statlab: Interactive Statistics</title>
  </head>
  <body>
    <h1>Statlab: Interactive Statistics</h1>
    <p>Summary numbers alone mislead. Every lesson pairs a statistic with the picture behind it.</p>
    <ul>
    <li> <h3> <a href="/` + variablesRef + `"> Variables </a> </h3> </li>
    <li> <h3> <a href="/` + dataTypesRef + `"> Data Types </a> </h3> </li>
    <li> <h3> <a href="/` + centralTendencyRef + `"> Central Tendency </a> </h3> </li>
    <li> <h3> <a href="/` + dispersionRef + `"> Dispersion </a> </h3> </li>
    <li> <h3> <a href="/` + linearRef + `"> Linear Correlation </a> </h3> </li>
    <li> <h3> <a href="/` + nonlinearRef + `"> Nonlinear Relationships </a> </h3> </li>
    <li> <h3> <a href="/` + simpsonRef + `"> Simpson's Paradox </a> </h3> </li>
    <li> <h3> <a href="/` + shapeRef + `"> Distribution Shape </a> </h3> </li>
    <li> <h3> <a href="/` + anscombeRef + `"> Anscombe's Quartet </a> </h3> </li>
    </ul>
</body>
</html>
`

// Server renders the lessons of every session.
type Server struct {
	cfg      *utils.Config
	lessons  *scenario.Lessons
	registry *session.Registry
	metrics  *metrics.Metrics
	log      logger.Logger
}

// generationLog logs every generated dataset and forwards it to the metrics.
type generationLog struct {
	log     logger.Logger
	metrics *metrics.Metrics
}

func (g generationLog) Generated(name string, trigger session.Trigger) {
	g.log.Debugf("Dataset %v generated (%v)", name, trigger)
	g.metrics.Generated(name, trigger)
}

// NewServer creates a server for the given configuration.
func NewServer(cfg *utils.Config, log logger.Logger) (*Server, error) {
	m := metrics.New()
	registry, err := session.NewRegistry(cfg.MaxSessions, cfg.Seed, log, generationLog{log: log, metrics: m})
	if err != nil {
		return nil, err
	}
	registry.OnCount(m.SetSessions)
	return &Server{
		cfg:      cfg,
		lessons:  scenario.New(cfg.Lang, input.NewParser(cfg.MaxInput)),
		registry: registry,
		metrics:  m,
		log:      log,
	}, nil
}

// Handler returns the routes of all lessons, gzip compressed for clients
// accepting it.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.renderMain)
	mux.HandleFunc("/"+linearRef, s.renderLinear)
	mux.HandleFunc("/"+nonlinearRef, s.renderNonlinear)
	mux.HandleFunc("/"+simpsonRef, s.renderSimpson)
	mux.HandleFunc("/"+shapeRef, s.renderShape)
	mux.HandleFunc("/"+anscombeRef, s.renderAnscombe)
	mux.HandleFunc("/"+centralTendencyRef, s.renderCentralTendency)
	mux.HandleFunc("/"+dispersionRef, s.renderDispersion)
	mux.HandleFunc("/"+variablesRef, s.renderVariables)
	mux.HandleFunc("/"+dataTypesRef, s.renderDataTypes)
	mux.Handle("/"+metricsRef, s.metrics.Handler())
	return gzhttp.GzipHandler(mux)
}

// FireUpWeb fires up the web-server on the given port and blocks.
func (s *Server) FireUpWeb(port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Noticef("Serving lessons at http://localhost:%v", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// renderMain renders the main menu.
func (s *Server) renderMain(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, MainHtml)
}

// store returns the session store of the requesting browser and starts a
// session if it has none.
func (s *Server) store(w http.ResponseWriter, r *http.Request) *session.Store {
	id := ""
	if c, err := r.Cookie(CookieName); err == nil {
		id = c.Value
	}
	id, store, fresh := s.registry.Resume(id)
	if fresh {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return store
}

// newPanel creates the panel of a lesson page.
func newPanel(ref, heading, intro string) panel {
	return panel{Nav: lessons, Ref: ref, Heading: heading, Intro: intro}
}

// reportInput shows a rejected input on the page and counts it.
func (s *Server) reportInput(p *panel, err error) {
	kind := input.Kind(err)
	if kind == "" {
		s.log.Warningf("Unexpected input error on %v: %v", p.Ref, err)
		kind = "other"
	}
	s.metrics.InputError(kind)
	p.Errors = append(p.Errors, err.Error())
}

// write renders a lesson page; failures are logged and answered with 500.
func (s *Server) write(w http.ResponseWriter, p panel, charts ...components.Charter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderLesson(w, p, charts...); err != nil {
		s.log.Errorf("Cannot render %v: %v", p.Ref, err)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
	}
}
