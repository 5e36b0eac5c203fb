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

// Package input parses the free-text lists typed into the lesson pages.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
)

// DefaultMaxInput is the largest accepted text field.
const DefaultMaxInput = 64 * datasize.KB

// probabilityTolerance is the deviation from 1 that is accepted without renormalizing.
const probabilityTolerance = 1e-9

// Parser converts comma-separated text into values.
type Parser struct {
	MaxInput datasize.ByteSize // upper bound for a single text field; zero disables the check
}

// NewParser creates a parser with the given input size limit.
func NewParser(maxInput datasize.ByteSize) *Parser {
	return &Parser{MaxInput: maxInput}
}

// defaultParser is used by the package level helpers.
var defaultParser = NewParser(DefaultMaxInput)

// ParseFloatList parses text with the default parser.
func ParseFloatList(text string) ([]float64, error) {
	return defaultParser.FloatList(text)
}

// ParseLabels parses text with the default parser.
func ParseLabels(text string) ([]string, error) {
	return defaultParser.Labels(text)
}

// ParsePaired parses two lists with the default parser.
func ParsePaired(a, b string) ([]float64, []float64, error) {
	return defaultParser.Paired(a, b)
}

// ParseProbabilities parses a weight list with the default parser.
func ParseProbabilities(text string, levels int) (Probabilities, error) {
	return defaultParser.Probabilities(text, levels)
}

func (p *Parser) checkSize(field, text string) error {
	if p.MaxInput > 0 && uint64(len(text)) > p.MaxInput.Bytes() {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("input of %s exceeds the limit of %s", datasize.ByteSize(len(text)).HR(), p.MaxInput.HR()),
		}
	}
	return nil
}

// FloatList parses a comma-separated list of numbers. Every token must be
// a number; an empty text or an empty token is a ParseError.
func (p *Parser) FloatList(text string) ([]float64, error) {
	if err := p.checkSize("list", text); err != nil {
		return nil, err
	}
	tokens := strings.Split(text, ",")
	values := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		v, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Token: token, Position: i}
		}
		values = append(values, v)
	}
	return values, nil
}

// Labels parses a comma-separated list of category names; blank names are
// dropped and a name given twice is a ValidationError.
func (p *Parser) Labels(text string) ([]string, error) {
	if err := p.checkSize("labels", text); err != nil {
		return nil, err
	}
	labels := []string{}
	seen := map[string]bool{}
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if seen[token] {
			return nil, &ValidationError{Field: "labels", Reason: fmt.Sprintf("category %q is listed twice", token)}
		}
		seen[token] = true
		labels = append(labels, token)
	}
	if len(labels) == 0 {
		return nil, &ValidationError{Field: "labels", Reason: "at least one category is required"}
	}
	return labels, nil
}

// Paired parses two lists that are used as (x, y) pairs; both must have the same length.
func (p *Parser) Paired(a, b string) ([]float64, []float64, error) {
	x, err := p.FloatList(a)
	if err != nil {
		return nil, nil, fmt.Errorf("first list: %w", err)
	}
	y, err := p.FloatList(b)
	if err != nil {
		return nil, nil, fmt.Errorf("second list: %w", err)
	}
	if len(x) != len(y) {
		return nil, nil, &ValidationError{
			Reason: fmt.Sprintf("both lists must have the same length (%d != %d)", len(x), len(y)),
		}
	}
	return x, y, nil
}

// Probabilities is a validated weight vector for categorical sampling.
type Probabilities struct {
	Weights      []float64 // sums to 1
	Renormalized bool      // the typed weights did not sum to 1 and were rescaled
}

// Probabilities parses one probability per level. Negative values, a wrong
// count or a zero sum are rejected; a sum other than 1 is renormalized.
func (p *Parser) Probabilities(text string, levels int) (Probabilities, error) {
	w, err := p.FloatList(text)
	if err != nil {
		return Probabilities{}, err
	}
	if len(w) != levels {
		return Probabilities{}, &ValidationError{
			Field:  "probabilities",
			Reason: fmt.Sprintf("expected %d values, one per level, got %d", levels, len(w)),
		}
	}
	sum := 0.0
	for i, v := range w {
		if v < 0 {
			return Probabilities{}, &ValidationError{
				Field:  "probabilities",
				Reason: fmt.Sprintf("value %v at position %d is negative", v, i+1),
			}
		}
		sum += v
	}
	if sum <= 0 {
		return Probabilities{}, &ValidationError{Field: "probabilities", Reason: "values must not all be zero"}
	}
	res := Probabilities{Weights: w}
	if math.Abs(sum-1) > probabilityTolerance {
		for i := range w {
			w[i] /= sum
		}
		res.Renormalized = true
	}
	return res, nil
}
