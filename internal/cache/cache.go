// Package cache provides the key-value layer used by the cache-aside read
// decorators. Two drivers: redis for deployments, memory for development
// and tests. Entries are short-lived snapshots, never the source of truth.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Client is the cache contract. A ttl of 0 means no expiry.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// IsNotFound reports whether err means the key was simply absent, as
// opposed to the backend being unreachable.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Config selects and configures a driver.
type Config struct {
	Driver   string // "redis" | "memory"
	Addr     string
	Password string
	DB       int
}

// New builds a client for the configured driver. Unknown drivers fall back
// to the in-memory implementation.
func New(cfg Config) (Client, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedis(cfg)
	default:
		return NewMemory(), nil
	}
}
