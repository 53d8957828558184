// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bloom-pizza/form"
	"github.com/danielhkuo/bloom-pizza/middleware"
	"github.com/danielhkuo/bloom-pizza/models"
	"github.com/danielhkuo/bloom-pizza/orderapi"
	"github.com/danielhkuo/bloom-pizza/session"
)

// FormHandler serves the order form as JSON for script-driven pages.
type FormHandler struct {
	sessions *session.Registry
	placer   form.OrderPlacer
}

func NewFormHandler(sessions *session.Registry, placer form.OrderPlacer) *FormHandler {
	return &FormHandler{sessions: sessions, placer: placer}
}

// GetState handles GET /api/form
func (h *FormHandler) GetState(w http.ResponseWriter, r *http.Request) {
	store := sessionStore(h.sessions, r)
	store.Settle()
	middleware.JSONResponse(w, http.StatusOK, store.Snapshot())
}

// Change handles POST /api/form/change
func (h *FormHandler) Change(w http.ResponseWriter, r *http.Request) {
	var ev models.ChangeEvent
	if err := middleware.ParseJSONBody(r, &ev); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	store := sessionStore(h.sessions, r)
	if err := store.HandleChange(ev); err != nil {
		if errors.Is(err, form.ErrUnknownField) || errors.Is(err, form.ErrUnknownTopping) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to apply change", "field", ev.Name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to apply change")
		return
	}

	store.Settle()
	middleware.JSONResponse(w, http.StatusOK, store.Snapshot())
}

// Submit handles POST /api/form/submit
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	store := sessionStore(h.sessions, r)

	_, err := store.Submit(r.Context(), h.placer)
	switch {
	case err == nil:
		slog.Info("order placed", "session_id", middleware.SessionID(r.Context()))
		middleware.JSONResponse(w, http.StatusOK, store.Snapshot())
	case errors.Is(err, form.ErrNotSubmittable):
		middleware.JSONResponse(w, http.StatusConflict, store.Snapshot())
	default:
		slog.Warn("order failed",
			"session_id", middleware.SessionID(r.Context()),
			"kind", orderapi.Kind(err),
			"error", err,
		)
		middleware.JSONResponse(w, orderapi.HTTPStatus(err), store.Snapshot())
	}
}

func sessionStore(sessions *session.Registry, r *http.Request) *form.Store {
	return sessions.Get(middleware.SessionID(r.Context()))
}
