// Package storetest backs collections with miniredis for tests.
package storetest

import (
	"testing"

	"github.com/KirkDiggler/moodmeet/internal/common/clock"
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis holds a miniredis server and a client connected to it
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts a miniredis server that is closed when the test ends
func NewRedis(t testing.TB) *Redis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &Redis{Server: mr, Client: client}
}

// Backend returns a store backend over the server
func (r *Redis) Backend(t testing.TB) store.Backend {
	t.Helper()

	backend, err := store.NewRedisBackend(&store.RedisBackendConfig{
		RedisClient: r.Client,
	})
	if err != nil {
		t.Fatalf("failed to create backend: %v", err)
	}

	return backend
}

// Collection opens a named collection of T documents
func Collection[T any, PT store.Document[T]](t testing.TB, backend store.Backend, name string, clk clock.Clock) store.Collection[T] {
	t.Helper()

	c, err := store.New[T, PT](&store.Config{
		Backend:       backend,
		Name:          name,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		t.Fatalf("failed to open collection %s: %v", name, err)
	}

	return c
}
