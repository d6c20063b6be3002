package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
	"github.com/target/mmk-testauth/internal/testutil"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client, uuid.NewString())
	t.Cleanup(func() {
		_ = client.Del(context.Background(), store.key).Err()
	})
	return store
}

func TestSessionStore_CurrentBeforePublish(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Current(context.Background())

	assert.ErrorIs(t, err, domainauth.ErrNoSession)
}

func TestSessionStore_PublishThenCurrent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := domainauth.Session{
		IDToken:   "T1",
		User:      "userA@example.com",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Publish(ctx, sess))

	got, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.IDToken, got.IDToken)
	assert.Equal(t, sess.User, got.User)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionStore_PublishOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Publish(ctx, domainauth.Session{IDToken: "T1", User: "userA@example.com"}))
	require.NoError(t, store.Publish(ctx, domainauth.Session{IDToken: "T2", User: "userB@example.com"}))

	got, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.IDToken)
	assert.Equal(t, "userB@example.com", got.User)
}

func TestSessionStore_NoExpiryMeansNoTTL(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Publish(ctx, domainauth.Session{IDToken: "T1", User: "userA@example.com"}))

	_, err := store.Current(ctx)
	assert.NoError(t, err)
}

func TestSessionStore_PublishPastExpirySucceeds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// A skewed clock can date a freshly issued token in the past; the
	// publish itself must still succeed.
	require.NoError(t, store.Publish(ctx, domainauth.Session{
		IDToken:   "stale",
		User:      "userA@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	// Readers then see the record as already aged out.
	_, err := store.Current(ctx)
	assert.ErrorIs(t, err, domainauth.ErrNoSession)
}

func TestSessionStore_WorkersShareOneRun(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	runID := uuid.NewString()

	writer := NewSessionStore(client, runID)
	reader := NewSessionStore(client, runID)
	t.Cleanup(func() {
		_ = client.Del(context.Background(), writer.key).Err()
	})

	ctx := context.Background()
	require.NoError(t, writer.Publish(ctx, domainauth.Session{IDToken: "T1", User: "userA@example.com"}))

	got, err := reader.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", got.IDToken)
}
