// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"fmt"

	"github.com/danielhkuo/bloom-pizza/catalog"
	"github.com/danielhkuo/bloom-pizza/models"
)

// HandleChange applies a raw input change to the draft and starts a
// background check of the changed field.
//
// Checkboxes toggle one topping id: checked adds it, unchecked removes it.
// Every other kind stores Value verbatim under Name; trimming is left to the
// schema.
func (s *Store) HandleChange(ev models.ChangeEvent) error {
	if ev.Kind == models.KindCheckbox {
		if ev.Name != models.FieldToppings {
			return fmt.Errorf("%w: checkbox %q", ErrUnknownField, ev.Name)
		}
		if _, ok := catalog.LookupTopping(ev.ID); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTopping, ev.ID)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		toppings := s.toggleLocked(ev.ID, ev.Checked)
		s.validateFieldLocked(models.FieldToppings, toppings)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.updateFieldLocked(ev.Name, ev.Value); err != nil {
		return err
	}
	s.validateFieldLocked(ev.Name, ev.Value)
	return nil
}
