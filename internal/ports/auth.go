package ports

// Package ports defines interfaces (hexagonal ports) for credential
// acquisition. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
)

// AcquireInput carries the inputs for one strategy execution.
type AcquireInput struct {
	// Record is the catalog entry to authenticate as, defaults applied.
	Record domainauth.AccountRecord

	// PastedHeader is the raw operator-supplied authorization header.
	// Required by the pasted-token strategy, ignored by direct auth.
	PastedHeader string
}

// TokenProvider executes one token-acquisition strategy against its source
// (identity provider or operator-supplied material) and returns the issued
// token verbatim. Providers never touch session state; publishing is the
// orchestrating service's job so there is a single point of mutation.
type TokenProvider interface {
	// Strategy names the acquisition strategy this provider implements.
	Strategy() domainauth.Strategy

	// Acquire obtains a bearer token for the given input.
	Acquire(ctx context.Context, in AcquireInput) (string, error)
}

// SessionStore publishes and reads the run-scoped session credential.
type SessionStore interface {
	// Publish unconditionally overwrites the session with sess.
	Publish(ctx context.Context, sess domainauth.Session) error

	// Current returns the most recently published session, or
	// domainauth.ErrNoSession before the first publish.
	Current(ctx context.Context) (domainauth.Session, error)
}

// EnvironmentResolver reports the active environment from the ambient
// execution context.
type EnvironmentResolver interface {
	Resolve() (domainauth.Environment, error)
}
