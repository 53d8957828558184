// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth issues and verifies browser session tokens.

# Session IDs

Session ids are random UUIDs:

	id := auth.NewSessionID()

# Signed Tokens

The session cookie carries the id plus an HMAC-SHA256 signature:

	token := auth.SignSession(id, salt)       // "<uuid>.<signature>"
	id, err := auth.VerifySession(token, salt)

The signature is URL-safe base64 encoded without padding. Since it's
deterministic, the same id and salt always produce the same token. This allows
validation without storing issued tokens.
*/
package auth
