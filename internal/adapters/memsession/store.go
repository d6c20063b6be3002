package memsession

// Package memsession holds the run-scoped session credential in process
// memory. This is the default session backend: one test process, one
// current credential.

import (
	"context"
	"sync"

	"golang.org/x/oauth2"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	"github.com/target/mmk-testauth/internal/ports"
)

// Store is a mutex-guarded single session record. Publish overwrites the
// record wholesale, so a failed acquisition elsewhere never leaves a partial
// update behind.
type Store struct {
	mu        sync.RWMutex
	sess      domainauth.Session
	published bool
}

var _ ports.SessionStore = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Publish implements ports.SessionStore.
func (s *Store) Publish(_ context.Context, sess domainauth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.published = true
	return nil
}

// Current implements ports.SessionStore.
func (s *Store) Current(_ context.Context) (domainauth.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.published {
		return domainauth.Session{}, domainauth.ErrNoSession
	}
	return s.sess, nil
}

// TokenSource exposes the published credential as an oauth2.TokenSource so
// downstream API clients can be built with oauth2.NewClient and always pick
// up the most recently published token.
func (s *Store) TokenSource() oauth2.TokenSource {
	return tokenSource{store: s}
}

type tokenSource struct {
	store *Store
}

func (t tokenSource) Token() (*oauth2.Token, error) {
	sess, err := t.store.Current(context.Background())
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{
		AccessToken: sess.IDToken,
		TokenType:   "Bearer",
		Expiry:      sess.ExpiresAt,
	}, nil
}
