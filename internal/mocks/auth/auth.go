package auth

// Package auth contains simple hand-written test doubles for the
// acquisition ports. These are lightweight and suitable for unit tests
// without codegen.

import (
	"context"
	"sync"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	"github.com/target/mmk-testauth/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenProvider       = (*MockTokenProvider)(nil)
	_ ports.SessionStore        = (*MemorySessionStore)(nil)
	_ ports.EnvironmentResolver = (*StaticResolver)(nil)
)

// MockTokenProvider simulates a token provider with a fixed strategy and
// deterministic output. Calls are counted so tests can assert a strategy was
// or was not exercised.
type MockTokenProvider struct {
	StrategyValue domainauth.Strategy
	Token         string
	Err           error
	AcquireFunc   func(ctx context.Context, in ports.AcquireInput) (string, error)

	mu    sync.Mutex
	calls int
}

// NewMockTokenProvider creates a direct-strategy provider returning token.
func NewMockTokenProvider(strategy domainauth.Strategy, token string) *MockTokenProvider {
	return &MockTokenProvider{StrategyValue: strategy, Token: token}
}

func (m *MockTokenProvider) Strategy() domainauth.Strategy { return m.StrategyValue }

func (m *MockTokenProvider) Acquire(ctx context.Context, in ports.AcquireInput) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, in)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// Calls reports how many times Acquire ran.
func (m *MockTokenProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MemorySessionStore is an in-memory ports.SessionStore with optional
// injected failures.
type MemorySessionStore struct {
	PublishErr error

	mu        sync.Mutex
	sess      domainauth.Session
	published bool
	publishes int
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (m *MemorySessionStore) Publish(_ context.Context, sess domainauth.Session) error {
	if m.PublishErr != nil {
		return m.PublishErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = sess
	m.published = true
	m.publishes++
	return nil
}

func (m *MemorySessionStore) Current(_ context.Context) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.published {
		return domainauth.Session{}, domainauth.ErrNoSession
	}
	return m.sess, nil
}

// Publishes reports how many times Publish succeeded.
func (m *MemorySessionStore) Publishes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.publishes
}

// StaticResolver resolves to a fixed environment or error.
type StaticResolver struct {
	Env domainauth.Environment
	Err error
}

func (r StaticResolver) Resolve() (domainauth.Environment, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return r.Env, nil
}
