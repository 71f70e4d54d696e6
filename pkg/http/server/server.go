package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Config carries the HTTP server knobs read from viper at startup.
type Config struct {
	Port    int
	Timeout time.Duration
}

// New builds the *http.Server with sane timeouts around the given handler.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      config.Timeout,
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
