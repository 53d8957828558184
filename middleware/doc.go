// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Sessions

Each browser gets its own order form. WithSession reads the signed
bloom_session cookie (issuing one if missing or invalid) and stores the
session id in the request context:

	mux.HandleFunc("GET /order", middleware.WithSession(salt, handler))

	id := middleware.SessionID(r.Context())

# CORS Middleware

Enable cross-origin requests when the page is served from another origin:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var ev models.ChangeEvent
	if err := middleware.ParseJSONBody(r, &ev); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
