package config

import (
	"fmt"
	"strings"
)

// SessionBackend selects where the published credential lives.
type SessionBackend string

const (
	// SessionBackendMemory keeps the session in process memory.
	SessionBackendMemory SessionBackend = "memory"
	// SessionBackendRedis shares the session across worker processes.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "memory", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: memory, redis)", v)
	}
}

// SessionConfig controls the session backend.
type SessionConfig struct {
	// Backend determines which session store to use.
	Backend SessionBackend `env:"BACKEND" envDefault:"memory"`

	// RunID keys the shared session when Backend is redis; workers of one
	// run must agree on it.
	RunID string `env:"RUN_ID" envDefault:"default"`
}

// Sanitize normalises session configuration values.
func (c *SessionConfig) Sanitize() {
	c.RunID = strings.TrimSpace(c.RunID)
	if c.RunID == "" {
		c.RunID = "default"
	}
	if c.Backend == "" {
		c.Backend = SessionBackendMemory
	}
}
