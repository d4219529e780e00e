package server

import (
	"time"

	"github.com/jschnasse/read-env-example/internal/logging"
)

// Config holds configuration for the HTTP front-end.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string

	// ReadTimeout bounds reading a request, headers included.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration

	// ShutdownTimeout is how long Run waits for in-flight requests once its
	// context is cancelled.
	ShutdownTimeout time.Duration

	// Logger defaults to a JSON logger on stdout.
	Logger logging.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}
