// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form holds the state of one order form and the operations that
change it.

# State

A Store keeps:

  - the draft: full name, size code, topping ids
  - one error message per field ("" when the field is fine)
  - a cached submittable flag
  - the outcome of the last submission (success or failure, never both)

# Changes

HandleChange is the single entry point for input events. Text and select
inputs store their value verbatim; checkboxes add or remove one topping id.
Each change starts a background check of the changed field and a recheck
of the whole draft. Results that arrive after a newer change are dropped.

	store.HandleChange(models.ChangeEvent{Kind: "text", Name: "fullName", Value: "Ada"})
	store.Settle()
	st := store.Snapshot()

# Submission

Submit settles pending checks, then posts the draft through an OrderPlacer
if the draft is submittable. Concurrent calls share one request. A success
resets the draft; a failure keeps it for a retry.
*/
package form
