// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/bloom-pizza/catalog"
	"github.com/danielhkuo/bloom-pizza/models"
	"github.com/danielhkuo/bloom-pizza/schema"
)

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrUnknownTopping = errors.New("unknown topping")
)

// Checker is the subset of the schema the store needs.
type Checker interface {
	ValidateField(name string, value any) ([]string, error)
	Valid(d models.Draft) bool
}

// Store holds one order form: the draft, per-field errors, the cached
// submittable flag, and the outcome of the last submission.
//
// Field validation and the submittable recheck run in background goroutines.
// Each run is tagged with a sequence number and its result is dropped if a
// newer run was started for the same field (or a newer draft exists), so the
// stored state converges on the latest edit regardless of completion order.
// Use Settle to wait for outstanding runs.
type Store struct {
	checker Checker

	mu        sync.Mutex
	settled   *sync.Cond
	running   int
	draft     models.Draft
	version   uint64
	errors    models.FieldErrors
	fieldSeq  map[string]uint64
	canSubmit bool
	pending   bool
	outcome   models.Outcome

	submits singleflight.Group
}

func NewStore(checker Checker) *Store {
	s := &Store{
		checker:  checker,
		draft:    models.NewDraft(),
		errors:   models.NewFieldErrors(),
		fieldSeq: make(map[string]uint64),
	}
	s.settled = sync.NewCond(&s.mu)
	return s
}

// UpdateField sets a scalar field verbatim. Toppings go through ToggleTopping.
func (s *Store) UpdateField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateFieldLocked(name, value)
}

func (s *Store) updateFieldLocked(name, value string) error {
	switch name {
	case models.FieldFullName:
		s.draft.FullName = value
	case models.FieldSize:
		s.draft.Size = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	s.draftChangedLocked()
	return nil
}

// ToggleTopping adds id when checked and removes it otherwise. The topping
// list never holds duplicates or ids outside the catalog. It returns the
// resulting list.
func (s *Store) ToggleTopping(id string, checked bool) ([]string, error) {
	if _, ok := catalog.LookupTopping(id); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopping, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleLocked(id, checked), nil
}

func (s *Store) toggleLocked(id string, checked bool) []string {
	has := s.draft.HasTopping(id)
	switch {
	case checked && !has:
		s.draft.Toppings = append(s.draft.Toppings, id)
	case !checked && has:
		kept := make([]string, 0, len(s.draft.Toppings))
		for _, t := range s.draft.Toppings {
			if t != id {
				kept = append(kept, t)
			}
		}
		s.draft.Toppings = kept
	default:
		// already in the requested state
		return cloneStrings(s.draft.Toppings)
	}

	s.draftChangedLocked()
	return cloneStrings(s.draft.Toppings)
}

// SetFieldError overwrites one field's error. An empty message clears it.
func (s *Store) SetFieldError(name, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.errors[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.errors[name] = message
	return nil
}

// RecomputeSubmittable rechecks the current draft in the background.
// Every draft change calls it.
func (s *Store) RecomputeSubmittable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
}

// ResetDraft restores the empty initial draft.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Settle blocks until every background validation started so far has
// finished (or been discarded).
func (s *Store) Settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.running > 0 {
		s.settled.Wait()
	}
}

// Snapshot returns a copy of the current state. Submitting is reported as
// unavailable while a submission is in flight.
func (s *Store) Snapshot() models.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := models.FormState{
		Values:    s.draft.Clone(),
		Errors:    s.errors.Clone(),
		CanSubmit: s.canSubmit && !s.pending,
		Pending:   s.pending,
	}
	switch s.outcome.Kind {
	case models.OutcomeSuccess:
		st.Success = s.outcome.Message
	case models.OutcomeFailure:
		st.Failure = s.outcome.Message
	}
	return st
}

// Outcome returns the result of the last submission.
func (s *Store) Outcome() models.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *Store) resetLocked() {
	s.draft = models.NewDraft()
	s.draftChangedLocked()
}

func (s *Store) draftChangedLocked() {
	s.version++
	s.recomputeLocked()
}

func (s *Store) recomputeLocked() {
	version := s.version
	draft := s.draft.Clone()

	s.goLocked(func() {
		ok := s.checker.Valid(draft)

		s.mu.Lock()
		defer s.mu.Unlock()
		if version != s.version {
			return // a newer draft has its own recheck
		}
		s.canSubmit = ok
	})
}

// validateFieldLocked checks one field in the background and writes its
// first message into the field's error slot.
func (s *Store) validateFieldLocked(name string, value any) {
	s.fieldSeq[name]++
	seq := s.fieldSeq[name]

	s.goLocked(func() {
		msgs, err := s.checker.ValidateField(name, value)
		msg := schema.First(msgs)
		if err != nil {
			msg = err.Error()
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.fieldSeq[name] {
			return // superseded by a later edit
		}
		s.errors[name] = msg
	})
}

func (s *Store) goLocked(fn func()) {
	s.running++
	go func() {
		defer func() {
			s.mu.Lock()
			s.running--
			if s.running == 0 {
				s.settled.Broadcast()
			}
			s.mu.Unlock()
		}()
		fn()
	}()
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
