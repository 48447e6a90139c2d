package credstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/pkg/credstore"
)

func redisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("load on empty store", func(t *testing.T) {
		t.Parallel()
		_, client := redisClient(t)
		store := credstore.NewRedisStore(client)

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredentials)
	})

	t.Run("save and load roundtrip", func(t *testing.T) {
		t.Parallel()
		_, client := redisClient(t)
		store := credstore.NewRedisStore(client)

		want := credstore.Credentials{Token: "tok", User: []byte(`{"id":1}`)}
		require.NoError(t, store.Save(ctx, want))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want.Token, got.Token)
		assert.Equal(t, want.User, got.User)
	})

	t.Run("rejects incomplete credentials", func(t *testing.T) {
		t.Parallel()
		_, client := redisClient(t)
		store := credstore.NewRedisStore(client)

		err := store.Save(ctx, credstore.Credentials{Token: "tok"})
		assert.ErrorIs(t, err, credstore.ErrIncompleteCredentials)

		err = store.Save(ctx, credstore.Credentials{User: []byte(`{}`)})
		assert.ErrorIs(t, err, credstore.ErrIncompleteCredentials)
	})

	t.Run("half-present hash reads as no credentials", func(t *testing.T) {
		t.Parallel()
		mr, client := redisClient(t)
		store := credstore.NewRedisStore(client)

		mr.HSet("shopkit:credentials", "token", "tok")

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredentials)
	})

	t.Run("clear removes the snapshot", func(t *testing.T) {
		t.Parallel()
		_, client := redisClient(t)
		store := credstore.NewRedisStore(client)

		require.NoError(t, store.Save(ctx, credstore.Credentials{Token: "tok", User: []byte(`{}`)}))
		require.NoError(t, store.Clear(ctx))

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredentials)
	})

	t.Run("clear on empty store is safe", func(t *testing.T) {
		t.Parallel()
		_, client := redisClient(t)
		store := credstore.NewRedisStore(client)

		assert.NoError(t, store.Clear(ctx))
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()
		mr, client := redisClient(t)
		store := credstore.NewRedisStore(client, credstore.WithKey("other:creds"))

		require.NoError(t, store.Save(ctx, credstore.Credentials{Token: "tok", User: []byte(`{}`)}))
		assert.True(t, mr.Exists("other:creds"))
		assert.False(t, mr.Exists("shopkit:credentials"))
	})

	t.Run("ttl expires the snapshot", func(t *testing.T) {
		t.Parallel()
		mr, client := redisClient(t)
		store := credstore.NewRedisStore(client, credstore.WithTTL(time.Minute))

		require.NoError(t, store.Save(ctx, credstore.Credentials{Token: "tok", User: []byte(`{}`)}))

		mr.FastForward(2 * time.Minute)
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, credstore.ErrNoCredentials)
	})
}
