// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for Bloom Pizza.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(sessions, orders, renderer, cfg)

# Endpoints

Health:

	GET /health

Pages (HTML):

	GET  /      - Landing page
	GET  /order - Order form
	POST /order - Submit the order form without script

Order form API (JSON):

	GET  /api/form        - Current form state
	POST /api/form/change - Apply one input change
	POST /api/form/submit - Place the order

Every route except /health runs behind middleware.WithSession, so each
browser gets its own form. /api/form/submit sends at most one order request
per session at a time.
*/
package router
