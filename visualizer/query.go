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
	"net/url"
	"strconv"
	"strings"
)

// regenerateParam carries the name of the dataset to regenerate.
const regenerateParam = "regenerate"

// query reads lesson controls. Numeric controls that are absent or
// malformed fall back to their defaults; the generators clamp the rest.
type query struct {
	values url.Values
}

func (q query) float(name string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(q.values.Get(name)), 64)
	if err != nil {
		return def
	}
	return v
}

func (q query) int(name string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(q.values.Get(name)))
	if err != nil {
		return def
	}
	return v
}

// text returns a text control. A submitted but empty field stays empty so
// that it is reported as an input error.
func (q query) text(name, def string) string {
	if _, ok := q.values[name]; !ok {
		return def
	}
	return q.values.Get(name)
}

func (q query) checked(name string) bool {
	return q.values.Get(name) != ""
}

// regenerate reports whether the request asks for a new sample of the named
// dataset.
func (q query) regenerate(name string) bool {
	return q.values.Get(regenerateParam) == name
}
