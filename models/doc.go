// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
form, the order client, and the HTTP handlers.

# Domain Types

  - Draft: fullName, size, toppings (the order payload)
  - FieldErrors: per-field message, empty when the field is valid
  - Outcome: unset, success(message) or failure(message)

# Request Types

  - ChangeEvent: type, name, value, checked, id

# Response Types

  - FormState: values, errors, can_submit, pending, success, failure
  - OrderResponse: message returned by the order service
  - ErrorResponse: error, message

Field names match the JSON keys posted to the order service:

	models.FieldFullName // "fullName"
	models.FieldSize     // "size"
	models.FieldToppings // "toppings"
*/
package models
