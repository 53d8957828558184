// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bloom-pizza/catalog"
	"github.com/danielhkuo/bloom-pizza/form"
	"github.com/danielhkuo/bloom-pizza/middleware"
	"github.com/danielhkuo/bloom-pizza/models"
	"github.com/danielhkuo/bloom-pizza/orderapi"
	"github.com/danielhkuo/bloom-pizza/session"
	"github.com/danielhkuo/bloom-pizza/web"
)

// PageHandler serves the HTML pages.
type PageHandler struct {
	sessions *session.Registry
	placer   form.OrderPlacer
	renderer *web.Renderer
}

func NewPageHandler(sessions *session.Registry, placer form.OrderPlacer, renderer *web.Renderer) *PageHandler {
	return &PageHandler{sessions: sessions, placer: placer, renderer: renderer}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, web.PageHome, nil)
}

// OrderForm handles GET /order
func (h *PageHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	store := sessionStore(h.sessions, r)
	store.Settle()
	h.render(w, web.PageOrder, web.NewOrderPage(store.Snapshot()))
}

// SubmitOrderForm handles POST /order, the no-script path. Every posted
// field is applied as a change, then the form is submitted if it is valid.
// The page is always re-rendered; the banner or field errors carry the result.
func (h *PageHandler) SubmitOrderForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	store := sessionStore(h.sessions, r)
	for _, ev := range formChanges(r) {
		if err := store.HandleChange(ev); err != nil {
			slog.Warn("ignored form change", "field", ev.Name, "error", err)
		}
	}

	store.Settle()
	if _, err := store.Submit(r.Context(), h.placer); err != nil {
		if !errors.Is(err, form.ErrNotSubmittable) {
			slog.Warn("order failed",
				"session_id", middleware.SessionID(r.Context()),
				"kind", orderapi.Kind(err),
				"error", err,
			)
		}
	} else {
		slog.Info("order placed", "session_id", middleware.SessionID(r.Context()))
	}

	h.render(w, web.PageOrder, web.NewOrderPage(store.Snapshot()))
}

func (h *PageHandler) render(w http.ResponseWriter, page string, data any) {
	if err := h.renderer.Render(w, http.StatusOK, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// formChanges turns a posted form into the events the page's inputs would
// have produced. Every catalog topping gets an explicit checked state so
// unticked boxes are removed from the draft.
func formChanges(r *http.Request) []models.ChangeEvent {
	events := []models.ChangeEvent{
		{Kind: models.KindText, Name: models.FieldFullName, Value: r.PostForm.Get(models.FieldFullName)},
		{Kind: models.KindSelect, Name: models.FieldSize, Value: r.PostForm.Get(models.FieldSize)},
	}

	ticked := make(map[string]bool)
	for _, id := range r.PostForm[models.FieldToppings] {
		ticked[id] = true
	}
	for _, t := range catalog.Toppings() {
		events = append(events, models.ChangeEvent{
			Kind:    models.KindCheckbox,
			Name:    models.FieldToppings,
			ID:      t.ID,
			Checked: ticked[t.ID],
		})
	}
	return events
}
