package redis

// Package redis provides a Redis-backed session store for harnesses that
// shard one test run across multiple worker processes. All workers of a run
// read and overwrite the same key, so the last successful acquisition wins
// run-wide, matching the in-process semantics.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	"github.com/target/mmk-testauth/internal/ports"
)

const defaultPrefix = "testauth:session:"

// SessionStore stores the run's session credential under a fixed key.
// When the published session carries a token expiry, it becomes the key TTL
// so stale credentials age out of Redis on their own.
type SessionStore struct {
	client redis.UniversalClient
	key    string
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a session store for the given run ID.
func NewSessionStore(client redis.UniversalClient, runID string) *SessionStore {
	return NewSessionStoreWithPrefix(client, defaultPrefix, runID)
}

// NewSessionStoreWithPrefix creates a session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix, runID string) *SessionStore {
	return &SessionStore{
		client: client,
		key:    prefix + runID,
	}
}

// Publish implements ports.SessionStore.
func (s *SessionStore) Publish(ctx context.Context, sess domainauth.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// Publishing a validated session must not fail on clock details. When
	// the expiry is already past (clock skew on a freshly issued token),
	// store without TTL and let Current age the record out.
	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		if remaining := time.Until(sess.ExpiresAt); remaining > 0 {
			ttl = remaining
		}
	}

	return s.client.Set(ctx, s.key, data, ttl).Err()
}

// Current implements ports.SessionStore.
func (s *SessionStore) Current(ctx context.Context) (domainauth.Session, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, domainauth.ErrNoSession
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// Double-check expiration (Redis TTL should handle this, but be defensive)
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		if deleteErr := s.client.Del(ctx, s.key).Err(); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, domainauth.ErrNoSession
	}

	return sess, nil
}
