package memsession

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/mmk-testauth/internal/domain/auth"
)

func TestStore_CurrentBeforePublish(t *testing.T) {
	store := NewStore()

	_, err := store.Current(context.Background())

	assert.ErrorIs(t, err, domainauth.ErrNoSession)
}

func TestStore_PublishThenCurrent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	sess := domainauth.Session{IDToken: "T1", User: "userA@example.com"}
	require.NoError(t, store.Publish(ctx, sess))

	got, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestStore_PublishOverwritesWholesale(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := domainauth.Session{
		IDToken:   "T1",
		User:      "userA@example.com",
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, store.Publish(ctx, first))

	second := domainauth.Session{IDToken: "T2", User: "userB@example.com"}
	require.NoError(t, store.Publish(ctx, second))

	got, err := store.Current(ctx)
	require.NoError(t, err)
	// No merge of prior fields: the zero ExpiresAt of the second publish wins too.
	assert.Equal(t, second, got)
}

func TestStore_TokenSource(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	source := store.TokenSource()

	_, err := source.Token()
	assert.ErrorIs(t, err, domainauth.ErrNoSession)

	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	require.NoError(t, store.Publish(ctx, domainauth.Session{
		IDToken:   "T1",
		User:      "userA@example.com",
		ExpiresAt: expiry,
	}))

	token, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, "T1", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, expiry, token.Expiry)

	// The source always reflects the latest publish.
	require.NoError(t, store.Publish(ctx, domainauth.Session{IDToken: "T2", User: "userB@example.com"}))
	token, err = source.Token()
	require.NoError(t, err)
	assert.Equal(t, "T2", token.AccessToken)
}
