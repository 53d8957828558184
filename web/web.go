// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/danielhkuo/bloom-pizza/catalog"
	"github.com/danielhkuo/bloom-pizza/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	PageHome  = "home"
	PageOrder = "order"
)

// Renderer executes the page templates. Each page is parsed together with
// the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageHome, PageOrder} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render writes a full page. The page is executed into a buffer first so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// OrderPage is the data behind the order form.
type OrderPage struct {
	State    models.FormState
	Sizes    []catalog.Size
	Toppings []catalog.Topping
}

func NewOrderPage(st models.FormState) OrderPage {
	return OrderPage{
		State:    st,
		Sizes:    catalog.Sizes(),
		Toppings: catalog.Toppings(),
	}
}

func (p OrderPage) SizeSelected(code string) bool {
	return p.State.Values.Size == code
}

func (p OrderPage) ToppingChecked(id string) bool {
	return p.State.Values.HasTopping(id)
}
