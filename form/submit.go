// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/bloom-pizza/models"
)

var ErrNotSubmittable = errors.New("order form is not submittable")

// OrderPlacer sends a draft to the order service and returns the service's
// confirmation message.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, d models.Draft) (string, error)
}

// failureMessager is implemented by errors that carry text meant for the
// failure banner.
type failureMessager interface {
	FailureMessage() string
}

// Submit sends the draft once. Outstanding validations are settled first so
// the cached submittable flag reflects the latest draft; if the flag is false
// nothing is sent and ErrNotSubmittable is returned.
//
// Concurrent calls share a single request. While it is in flight the form
// reports itself as pending and not submittable. Canceling ctx does not stop
// the request; it runs to completion and its outcome is recorded.
//
// On success the draft is reset and the success message recorded. On
// failure the draft is kept, the failure message recorded, and the order
// error returned alongside the outcome.
func (s *Store) Submit(ctx context.Context, placer OrderPlacer) (models.Outcome, error) {
	s.Settle()

	// an abandoned caller must not cancel an order already on the wire
	ctx = context.WithoutCancel(ctx)
	v, err, shared := s.submits.Do("submit", func() (any, error) {
		return s.submit(ctx, placer)
	})
	if shared {
		slog.Debug("joined in-flight order submission")
	}

	out, _ := v.(models.Outcome)
	return out, err
}

func (s *Store) submit(ctx context.Context, placer OrderPlacer) (models.Outcome, error) {
	s.mu.Lock()
	if !s.canSubmit || s.pending {
		s.mu.Unlock()
		return models.Outcome{}, ErrNotSubmittable
	}
	s.pending = true
	draft := s.draft.Clone()
	s.mu.Unlock()

	message, err := placer.PlaceOrder(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false

	if err != nil {
		s.outcome = models.Failure(failureMessage(err))
		return s.outcome, fmt.Errorf("place order: %w", err)
	}

	s.resetLocked()
	// an empty draft never validates
	s.canSubmit = false
	s.outcome = models.Success(message)
	return s.outcome, nil
}

func failureMessage(err error) string {
	var fm failureMessager
	if errors.As(err, &fm) {
		return fm.FailureMessage()
	}
	return err.Error()
}
