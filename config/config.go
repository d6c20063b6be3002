package config

// AppConfig is the main configuration struct that composes domain-specific
// configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - auth.go: credential acquisition configuration
//   - session.go: session backend configuration
//   - redis.go: Redis connection configuration
//   - observability.go: metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging).
	IsDev bool `env:"DEV" envDefault:"false"`

	// Auth is the credential acquisition configuration.
	Auth AuthConfig `envPrefix:"AUTH_"`

	// Session is the session backend configuration.
	Session SessionConfig `envPrefix:"SESSION_"`

	// Redis connection settings for the shared session backend.
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Observability configuration.
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Session.Sanitize()
	c.Observability.Sanitize()
}
