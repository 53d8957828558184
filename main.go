package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/bloom-pizza/cliparse"
	"github.com/danielhkuo/bloom-pizza/form"
	"github.com/danielhkuo/bloom-pizza/middleware"
	"github.com/danielhkuo/bloom-pizza/orderapi"
	"github.com/danielhkuo/bloom-pizza/router"
	"github.com/danielhkuo/bloom-pizza/schema"
	"github.com/danielhkuo/bloom-pizza/session"
	"github.com/danielhkuo/bloom-pizza/web"
)

func main() {
	var err error

	// Load .env before reading the environment
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	// One schema is shared by every session's store
	checker := schema.New()
	sessions := session.NewRegistry(func() *form.Store {
		return form.NewStore(checker)
	})
	orders := orderapi.New(cfg.OrderAPIURL, cfg.OrderAPITimeout)
	slog.Info("Order service configured", "endpoint", orders.Endpoint(), "timeout", cfg.OrderAPITimeout.String())

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sweepSessions(ctx, sessions, cfg.SessionTTL)

	// Create router
	mux := router.NewRouter(sessions, orders, renderer, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      writeTimeout(cfg.OrderAPITimeout),
		IdleTimeout:       60 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		stop()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// writeTimeout leaves room for a full order call after the request is read.
// An unbounded order call gets an unbounded response writer.
func writeTimeout(orderTimeout time.Duration) time.Duration {
	if orderTimeout <= 0 {
		return 0
	}
	return orderTimeout + 10*time.Second
}

// sweepSessions drops idle form sessions until ctx is done.
func sweepSessions(ctx context.Context, sessions *session.Registry, ttl time.Duration) {
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(ttl); n > 0 {
				slog.Info("expired form sessions", "removed", n, "active", sessions.Len())
			}
		}
	}
}
