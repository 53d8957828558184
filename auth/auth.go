// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// NewSessionID creates a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// SignSession returns the cookie value for a session: "<id>.<signature>".
// The signature is an HMAC of the id, so tokens can be verified without
// keeping a list of issued ids.
func SignSession(sessionID, salt string) string {
	return sessionID + "." + signature(sessionID, salt)
}

// VerifySession checks a token produced by SignSession and returns the
// session id it carries.
func VerifySession(token, salt string) (string, error) {
	i := strings.LastIndexByte(token, '.')
	if i <= 0 || i == len(token)-1 {
		return "", ErrInvalidToken
	}
	sessionID, sig := token[:i], token[i+1:]

	if _, err := uuid.Parse(sessionID); err != nil {
		return "", ErrInvalidToken
	}

	expected := signature(sessionID, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidToken
	}
	return sessionID, nil
}

func signature(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner cookies
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
