// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema holds the validation rules for an order draft.

Rules are declared as go-playground/validator tags and shared by the
single-field check (run on every change) and the whole-draft check (which
gates submission):

	s := schema.New()
	msgs, err := s.ValidateField(models.FieldFullName, "Al")
	// msgs == []string{"full name must be at least 3 characters"}

	ok := s.Valid(draft)

# Rules

  - fullName: string, trimmed length between 3 and 20
  - size: required, one of S, M, L
  - toppings: list of integer ids between 1 and 5, no repeats
*/
package schema
