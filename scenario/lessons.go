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

// Package scenario binds every lesson to its generator, its session
// dataset and the statistics it displays. A lesson render resolves its
// dataset through the session store and is free of side effects unless
// the dataset is absent or a regeneration was requested.
package scenario

import (
	"github.com/Fantom-foundation/Statlab/input"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Names of the session datasets.
const (
	LinearName       = "linear-correlation"
	NonlinearName    = "nonlinear"
	SimpsonName      = "simpson"
	ShapeName        = "distribution-shape"
	ContinuousName   = "continuous"
	NominalName      = "nominal"
	OrdinalName      = "ordinal"
	CrossSectionName = "cross-sectional"
	TimeSeriesName   = "time-series"
	PanelName        = "panel"
)

// Defaults of the text inputs.
const (
	DefaultList       = "10,20,30,40,50,60,70,80,90,10"
	DefaultSecondList = "15,25,35,45,55,65,75,85,95,15"
	DefaultCustom     = "1,2,2,3,3,3,4,4,5,10,15,20"
	DefaultCategories = "Red,Blue,Green"
	DefaultLevels     = "Low,Medium,High"
	DefaultWeights    = "0.2,0.5,0.3"
)

// Lessons computes the lesson views. Numbers in titles are formatted for
// the configured language.
type Lessons struct {
	printer *message.Printer
	parser  *input.Parser
}

// New creates the lessons for the given language and input parser.
func New(lang language.Tag, parser *input.Parser) *Lessons {
	if parser == nil {
		parser = input.NewParser(input.DefaultMaxInput)
	}
	return &Lessons{printer: message.NewPrinter(lang), parser: parser}
}

// Sprintf formats with the lesson language.
func (l *Lessons) Sprintf(format string, args ...interface{}) string {
	return l.printer.Sprintf(format, args...)
}

// Parser returns the parser used for the text inputs.
func (l *Lessons) Parser() *input.Parser {
	return l.parser
}
