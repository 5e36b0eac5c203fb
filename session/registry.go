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

package session

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Fantom-foundation/Statlab/logger"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultMaxSessions bounds the number of live sessions.
const DefaultMaxSessions = 1024

// Registry holds the stores of all live sessions. When more than the
// configured number of sessions exist, the least recently used one ends
// and its datasets are discarded. Stores are never shared between sessions.
type Registry struct {
	sessions *lru.Cache
	seed     uint64
	created  uint64
	log      logger.Logger
	observer Observer
	onCount  func(n int)
}

// NewRegistry creates a registry for up to maxSessions sessions. A seed of
// zero derives the session seeds from the clock; any other seed makes the
// n-th created session reproducible.
func NewRegistry(maxSessions int, seed uint64, log logger.Logger, observer Observer) (*Registry, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := &Registry{seed: seed, log: log, observer: observer}
	cache, err := lru.NewWithEvict(maxSessions, func(key interface{}, _ interface{}) {
		r.log.Debugf("Session %v ended", key)
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create session registry: %w", err)
	}
	r.sessions = cache
	return r, nil
}

// OnCount registers a callback receiving the number of live sessions after
// every change.
func (r *Registry) OnCount(f func(n int)) {
	r.onCount = f
}

// Get returns the store of a live session.
func (r *Registry) Get(id string) (*Store, bool) {
	v, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Store), true
}

// Create starts a new session and returns its id and store.
func (r *Registry) Create() (string, *Store) {
	n := atomic.AddUint64(&r.created, 1)
	id := uuid.NewString()
	store := NewStore(r.seed+n, r.observer)
	r.sessions.Add(id, store)
	r.log.Debugf("Session %v started", id)
	r.count()
	return id, store
}

// Resume returns the store of the session with the given id, or starts a
// new session if the id is unknown. fresh reports whether a new session
// was started.
func (r *Registry) Resume(id string) (newID string, store *Store, fresh bool) {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return id, s, false
		}
	}
	newID, store = r.Create()
	return newID, store, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}

func (r *Registry) count() {
	if r.onCount != nil {
		r.onCount(r.sessions.Len())
	}
}
