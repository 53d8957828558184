// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/danielhkuo/bloom-pizza/auth"
	"github.com/danielhkuo/bloom-pizza/cliparse"
	"github.com/danielhkuo/bloom-pizza/form"
	"github.com/danielhkuo/bloom-pizza/middleware"
	"github.com/danielhkuo/bloom-pizza/models"
	"github.com/danielhkuo/bloom-pizza/schema"
	"github.com/danielhkuo/bloom-pizza/session"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		OrderAPIURL:     "http://127.0.0.1:0/api/order",
		OrderAPITimeout: 2 * time.Second,
		SessionSalt:     "test-session-salt",
		SessionTTL:      time.Minute,
		LogLevel:        slog.LevelInfo,
	}
}

// NewTestRegistry returns a session registry whose stores validate with the
// real schema
func NewTestRegistry() *session.Registry {
	s := schema.New()
	return session.NewRegistry(func() *form.Store {
		return form.NewStore(s)
	})
}

// OrderServer is a fake order service that records every order it receives
type OrderServer struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	received []models.Draft
}

// NewOrderServer starts a fake order service answering with status and body.
// It is closed when the test ends.
func NewOrderServer(t *testing.T, status int, body string) *OrderServer {
	t.Helper()

	s := &OrderServer{status: status, body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *OrderServer) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	var d models.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		http.Error(w, `{"message":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.received = append(s.received, d)
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// SetResponse changes what later requests are answered with
func (s *OrderServer) SetResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// Received returns the orders posted so far
func (s *OrderServer) Received() []models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Draft, len(s.received))
	copy(out, s.received)
	return out
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a urlencoded form post
func MakeFormRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// WithSessionCookie attaches a signed session cookie for sessionID
func WithSessionCookie(req *http.Request, sessionID, salt string) *http.Request {
	req.AddCookie(&http.Cookie{
		Name:  middleware.SessionCookie,
		Value: auth.SignSession(sessionID, salt),
	})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
