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

// Package session keeps the datasets of one interactive session.
//
// A dataset is materialized lazily on its first read using the parameters
// current at that moment and is replaced only by an explicit regenerate
// action. Changing a parameter alone never resamples: the stored dataset
// stays until the user asks for a new one, so the same parameters can be
// shown to produce different samples.
package session

import (
	"sort"
	"sync"

	"github.com/Fantom-foundation/Statlab/dataset"
	"github.com/Fantom-foundation/Statlab/generator"
	"golang.org/x/exp/rand"
)

// Trigger tells why a dataset was generated.
type Trigger string

const (
	Initial    Trigger = "initial"    // first read of an absent dataset
	Regenerate Trigger = "regenerate" // explicit user action
)

// GenerateFunc samples a dataset from the session's random source.
type GenerateFunc func(rg *rand.Rand) dataset.Dataset

// Observer is notified about every generation.
type Observer interface {
	Generated(name string, trigger Trigger)
}

// Entry is a stored dataset together with the parameters that produced it.
type Entry struct {
	Data       dataset.Dataset
	Params     generator.Params
	Generation uint64 // number of times this name was generated in the session
}

// Store maps scenario names to their last generated dataset.
type Store struct {
	mu       sync.Mutex
	entries  map[string]Entry
	rg       *rand.Rand
	observer Observer
}

// NewStore creates an empty store sampling from the given seed.
func NewStore(seed uint64, observer Observer) *Store {
	return &Store{
		entries:  map[string]Entry{},
		rg:       generator.NewRand(seed),
		observer: observer,
	}
}

// Get returns the stored entry without generating anything.
func (s *Store) Get(name string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[name]
	return e, ok
}

// Resolve returns the dataset stored under name. If regenerate is set, or
// the name is absent, gen is invoked with the current params and the result
// replaces the stored entry. Otherwise the store is left untouched and the
// previously generated entry is returned, even if params differ.
func (s *Store) Resolve(name string, params generator.Params, regenerate bool, gen GenerateFunc) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[name]
	if ok && !regenerate {
		return e
	}
	trigger := Regenerate
	if !ok {
		trigger = Initial
	}
	e = Entry{
		Data:       gen(s.rg),
		Params:     params,
		Generation: e.Generation + 1,
	}
	s.entries[name] = e
	if s.observer != nil {
		s.observer.Generated(name, trigger)
	}
	return e
}

// Regenerate unconditionally replaces the dataset stored under name.
func (s *Store) Regenerate(name string, params generator.Params, gen GenerateFunc) Entry {
	return s.Resolve(name, params, true, gen)
}

// Names returns the names of all present datasets in sorted order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
