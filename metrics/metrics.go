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

// Package metrics exports the server counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/Fantom-foundation/Statlab/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so that several servers (e.g. in tests)
// do not collide on the global one.
type Metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	inputErrors *prometheus.CounterVec
	sessions    prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statlab_dataset_generations_total",
			Help: "Number of generated datasets by scenario and trigger.",
		}, []string{"scenario", "trigger"}),
		inputErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statlab_input_errors_total",
			Help: "Number of rejected user inputs by kind.",
		}, []string{"kind"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statlab_sessions",
			Help: "Number of live sessions.",
		}),
	}
	m.registry.MustRegister(m.generations, m.inputErrors, m.sessions)
	return m
}

// Generated counts a dataset generation; it implements session.Observer.
func (m *Metrics) Generated(name string, trigger session.Trigger) {
	m.generations.WithLabelValues(name, string(trigger)).Inc()
}

// InputError counts a rejected input of the given kind ("parse" or "validation").
func (m *Metrics) InputError(kind string) {
	m.inputErrors.WithLabelValues(kind).Inc()
}

// SetSessions records the number of live sessions.
func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}

// Handler serves the collected metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
