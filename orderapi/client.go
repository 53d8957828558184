// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package orderapi posts orders to the order service.
package orderapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/danielhkuo/bloom-pizza/models"
)

// DefaultEndpoint is where the order service listens in development.
const DefaultEndpoint = "http://localhost:9009/api/order"

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client posts orders to the order service.
type Client struct {
	endpoint string
	http     *http.Client
}

// New returns a Client for endpoint. A non-positive timeout means requests
// are bounded only by their context.
func New(endpoint string, timeout time.Duration) *Client {
	if timeout < 0 {
		timeout = 0
	}
	return NewWithHTTPClient(endpoint, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(endpoint string, hc *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: hc}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

type nestedMessage struct {
	Message string `json:"message"`
}

// errorBody covers the shapes order services use for error messages:
// {"message": ...}, {"data": {"message": ...}} and {"error": {"message": ...}}.
type errorBody struct {
	Message string          `json:"message"`
	Data    *nestedMessage  `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// PlaceOrder sends one POST with the draft as its JSON body and returns the
// service's message.
//
// A non-2xx response yields *RejectedError carrying the service's message.
// A request that never got a response yields *TransportError.
func (c *Client) PlaceOrder(ctx context.Context, d models.Draft) (string, error) {
	if d.Toppings == nil {
		d.Toppings = []string{}
	}
	body, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("order request failed", "endpoint", c.endpoint, "error", err)
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to read order response: %w", err)}
	}

	slog.Info("order request completed",
		"endpoint", c.endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RejectedError{
			Status:  resp.StatusCode,
			Message: rejectionMessage(resp.StatusCode, raw),
		}
	}

	var ok models.OrderResponse
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &ok); err != nil {
			return "", fmt.Errorf("failed to decode order response: %w", err)
		}
	}
	return ok.Message, nil
}

func rejectionMessage(status int, raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Data != nil && body.Data.Message != "" {
			return body.Data.Message
		}
		var nested nestedMessage
		if len(body.Error) > 0 && json.Unmarshal(body.Error, &nested) == nil && nested.Message != "" {
			return nested.Message
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("order failed with status %d", status)
}
