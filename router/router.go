// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/bloom-pizza/cliparse"
	"github.com/danielhkuo/bloom-pizza/form"
	"github.com/danielhkuo/bloom-pizza/handlers"
	"github.com/danielhkuo/bloom-pizza/middleware"
	"github.com/danielhkuo/bloom-pizza/session"
	"github.com/danielhkuo/bloom-pizza/web"
)

func NewRouter(sessions *session.Registry, placer form.OrderPlacer, renderer *web.Renderer, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(sessions, placer, renderer)
	formHandler := handlers.NewFormHandler(sessions, placer)

	// every page and API call belongs to a browser session
	withSession := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(cfg.SessionSalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", withSession(pageHandler.Home))
	mux.HandleFunc("GET /order", withSession(pageHandler.OrderForm))
	mux.HandleFunc("POST /order", withSession(pageHandler.SubmitOrderForm))

	// Order form API used by the page script
	mux.HandleFunc("GET /api/form", withSession(formHandler.GetState))
	mux.HandleFunc("POST /api/form/change", withSession(formHandler.Change))
	mux.HandleFunc("POST /api/form/submit", withSession(formHandler.Submit))

	return mux
}
