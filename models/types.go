// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Form field names
const (
	FieldFullName = "fullName"
	FieldSize     = "size"
	FieldToppings = "toppings"
)

// Input element kinds carried by a change notification
const (
	KindText     = "text"
	KindSelect   = "select"
	KindCheckbox = "checkbox"
)

// Outcome kinds
const (
	OutcomeUnset   = ""
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Domain types

// Draft is the in-progress order. It is also the request body sent to the
// order service.
type Draft struct {
	FullName string   `json:"fullName"`
	Size     string   `json:"size"`
	Toppings []string `json:"toppings"`
}

// NewDraft returns the empty initial draft.
func NewDraft() Draft {
	return Draft{Toppings: []string{}}
}

// Clone returns a copy that shares no memory with d.
func (d Draft) Clone() Draft {
	out := d
	out.Toppings = make([]string, len(d.Toppings))
	copy(out.Toppings, d.Toppings)
	return out
}

// HasTopping reports whether id is selected
func (d Draft) HasTopping(id string) bool {
	for _, t := range d.Toppings {
		if t == id {
			return true
		}
	}
	return false
}

// field name -> message, "" means no error
type FieldErrors map[string]string

func NewFieldErrors() FieldErrors {
	return FieldErrors{
		FieldFullName: "",
		FieldSize:     "",
		FieldToppings: "",
	}
}

func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Outcome is the result of the last submission. Success and failure are
// mutually exclusive.
type Outcome struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

func Success(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}

func Failure(message string) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: message}
}

// Request types

// ChangeEvent is a raw input change from the order page.
// ID and Checked are only meaningful for checkboxes.
type ChangeEvent struct {
	Kind    string `json:"type"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
	ID      string `json:"id"`
}

// Response types

// FormState is a point-in-time view of a session's order form.
type FormState struct {
	Values    Draft       `json:"values"`
	Errors    FieldErrors `json:"errors"`
	CanSubmit bool        `json:"can_submit"`
	Pending   bool        `json:"pending"`
	Success   string      `json:"success,omitempty"`
	Failure   string      `json:"failure,omitempty"`
}

// OrderResponse is the body returned by the order service.
type OrderResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
