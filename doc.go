// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Bloom Pizza order server.

Bloom Pizza serves a pizza order form. Each browser session gets its own
form: a draft order (full name, size, toppings), per-field error messages,
and a cached flag saying whether the draft may be submitted. Fields are
validated as they change, and a valid draft is posted to the order service
exactly once per submit.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SESSION_SALT=... go run .

Or with flags:

	go run . -p 3000 -api http://localhost:9009/api/order --session-salt ...

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - SESSION_SALT (--session-salt): Secret for session cookie HMAC

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - ORDER_API_URL (-api): Order service endpoint (default: http://localhost:9009/api/order)
  - ORDER_API_TIMEOUT (-timeout): Order request timeout (default: 10s)
  - SESSION_TTL (-session-ttl): Idle time before a form session is dropped (default: 30m)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (pages, form API)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, session cookies, JSON helpers
  - form: Per-session form store, change handling, submission
  - schema: Field and draft validation
  - catalog: Fixed toppings and sizes
  - orderapi: Order service client
  - session: In-memory session registry
  - web: Embedded HTML templates
  - models: Shared request/response types
  - auth: Session id generation and signing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
