// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session keeps one order form per browser session.
package session

import (
	"sync"
	"time"

	"github.com/danielhkuo/bloom-pizza/form"
)

type entry struct {
	store    *form.Store
	lastSeen time.Time
}

// Registry keeps one form store per browser session, in memory only.
type Registry struct {
	newStore func() *form.Store
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewRegistry(newStore func() *form.Store) *Registry {
	return &Registry{
		newStore: newStore,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Get returns the store for id, creating it on first use.
func (r *Registry) Get(id string) *form.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		e = &entry{store: r.newStore()}
		r.sessions[id] = e
	}
	e.lastSeen = r.now()
	return e.store
}

// Sweep drops sessions idle for longer than maxIdle and returns how many
// were removed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
