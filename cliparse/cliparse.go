package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = 3000
	DefaultOrderAPIURL = "http://localhost:9009/api/order"
	DefaultTimeout     = 10 * time.Second
	DefaultSessionTTL  = 30 * time.Minute
)

type Config struct {
	Port            int
	OrderAPIURL     string
	OrderAPITimeout time.Duration
	SessionSalt     string
	SessionTTL      time.Duration
	LogLevel        slog.Level
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeout, ttl, level string

	fs := flag.NewFlagSet("bloom-pizza", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.OrderAPIURL, "api", "", "Order service endpoint")
	fs.StringVar(&timeout, "timeout", "", "Order request timeout, e.g. 10s (0 disables)")

	// Sessions
	fs.StringVar(&cfg.SessionSalt, "session-salt", "", "Session cookie salt (prefer env)")
	fs.StringVar(&ttl, "session-ttl", "", "Idle time before a form session is dropped")

	fs.StringVar(&level, "log-level", "", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.OrderAPIURL == "" {
		cfg.OrderAPIURL = os.Getenv("ORDER_API_URL")
		if cfg.OrderAPIURL == "" {
			cfg.OrderAPIURL = DefaultOrderAPIURL
		}
	}

	var err error
	cfg.OrderAPITimeout, err = durationSetting(timeout, "ORDER_API_TIMEOUT", DefaultTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL, err = durationSetting(ttl, "SESSION_TTL", DefaultSessionTTL)
	if err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, errors.New("SESSION_TTL must be positive")
	}

	// Secrets - MUST be provided
	if cfg.SessionSalt == "" {
		cfg.SessionSalt = os.Getenv("SESSION_SALT")
	}
	if cfg.SessionSalt == "" {
		return Config{}, errors.New("SESSION_SALT required")
	}

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", level)
		}
	}

	return cfg, nil
}

func durationSetting(flagValue, envKey string, def time.Duration) (time.Duration, error) {
	v := flagValue
	if v == "" {
		v = os.Getenv(envKey)
	}
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", envKey, err)
	}
	return d, nil
}
