// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - OrderAPIURL: Order service endpoint (default: http://localhost:9009/api/order)
  - OrderAPITimeout: Per-order request timeout (default: 10s, 0 disables)
  - SessionSalt: Secret for session cookie signatures (required)
  - SessionTTL: Idle time before a form session is dropped (default: 30m)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p             Server port
	-api           Order service endpoint
	-timeout       Order request timeout
	-session-salt  Session cookie salt
	-session-ttl   Session idle timeout
	-log-level     debug, info, warn, error

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	ORDER_API_URL     → -api
	ORDER_API_TIMEOUT → -timeout
	SESSION_SALT      → -session-salt
	SESSION_TTL       → -session-ttl
	LOG_LEVEL         → -log-level

CLI flags take precedence over environment variables, and environment
variables take precedence over a .env file.
*/
package cliparse
