// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package orderapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrUnavailable = errors.New("order service unavailable")

// RejectedError is a non-2xx answer from the order service.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("order rejected with status %d: %s", e.Status, e.Message)
}

// FailureMessage is the text shown in the failure banner.
func (e *RejectedError) FailureMessage() string {
	return e.Message
}

// TransportError means the order service never answered.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnavailable, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *TransportError) FailureMessage() string {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return "order service timed out"
	}
	return ErrUnavailable.Error()
}

// Kind classifies an order error for logs and status mapping.
func Kind(err error) string {
	var rejected *RejectedError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rejected):
		return "rejected"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "internal"
	}
}

// HTTPStatus maps an order error to the status returned to the browser.
func HTTPStatus(err error) int {
	switch Kind(err) {
	case "":
		return http.StatusOK
	case "rejected", "unavailable":
		return http.StatusBadGateway
	case "timeout":
		return http.StatusGatewayTimeout
	case "canceled":
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
