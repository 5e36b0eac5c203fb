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

package input

import (
	"errors"
	"fmt"
)

// ParseError reports a token of a user-typed list that is not a number.
type ParseError struct {
	Token    string // offending token, trimmed
	Position int    // zero-based index of the token in the list
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("empty value at position %d", e.Position+1)
	}
	return fmt.Sprintf("%q at position %d is not a number", e.Token, e.Position+1)
}

// ValidationError reports well-formed input that cannot be used,
// e.g. two lists of different length.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Kind classifies an input error for reporting; it returns "parse",
// "validation" or "" for errors not produced by this package.
func Kind(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return "parse"
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return "validation"
	}
	return ""
}
