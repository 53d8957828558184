// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for Bloom Pizza.

# Handler Types

Each handler is a struct with its dependencies injected by constructor:

  - PageHandler: server-rendered pages (landing page and order form)
  - FormHandler: JSON view of the order form for the page script

	pages := handlers.NewPageHandler(sessions, orders, renderer)
	api := handlers.NewFormHandler(sessions, orders)

Both resolve the caller's form.Store from the session registry using the id
that middleware.WithSession put in the request context.

# Order Form Flow

The page script reports every input change:

	POST /api/form/change → Change (returns the settled form state)
	POST /api/form/submit → Submit

Without script the browser posts the whole form:

	POST /order → SubmitOrderForm (applies each field, submits, re-renders)

# Status Codes

Submit returns the form state in every case:

  - 200: order placed, draft reset, success banner set
  - 409: form not submittable, nothing sent
  - 502: order service rejected the order or could not be reached
  - 504: order service timed out

Change returns 400 for malformed JSON, an unknown field, or a topping id
outside the catalog.
*/
package handlers
