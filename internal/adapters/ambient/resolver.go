package ambient

// Package ambient resolves the active environment from the execution
// context. The default source is the TEST_ENV variable set by the harness.

import (
	"os"
	"strings"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	"github.com/target/mmk-testauth/internal/ports"
)

// DefaultEnvVar names the variable carrying the active environment label.
const DefaultEnvVar = "TEST_ENV"

// Config controls where the resolver reads the label from.
type Config struct {
	// EnvVar names the environment variable to read. Defaults to TEST_ENV.
	EnvVar string

	// Getter overrides label lookup entirely. Used by tests and by
	// harnesses that select the environment through their own UI.
	Getter func() string
}

// Resolver implements ports.EnvironmentResolver.
type Resolver struct {
	getter func() string
}

var _ ports.EnvironmentResolver = (*Resolver)(nil)

// NewResolver builds a resolver from Config.
func NewResolver(cfg Config) *Resolver {
	getter := cfg.Getter
	if getter == nil {
		envVar := cfg.EnvVar
		if envVar == "" {
			envVar = DefaultEnvVar
		}
		getter = func() string { return os.Getenv(envVar) }
	}
	return &Resolver{getter: getter}
}

// Resolve normalizes the ambient label and maps it to a recognized
// environment. Unrecognized labels are reported, never defaulted.
func (r *Resolver) Resolve() (domainauth.Environment, error) {
	label := strings.ToLower(strings.TrimSpace(r.getter()))
	return domainauth.ParseEnvironment(label)
}
