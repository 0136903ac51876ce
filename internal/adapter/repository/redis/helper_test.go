package redis

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

func newTestRedisClient(t *testing.T) (*redislib.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// newTestStores wires the balance cache and the idempotency store onto one
// miniredis instance, the way the server shares a single client.
func newTestStores(t *testing.T) (*BalanceCache, *IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()

	client, mr := newTestRedisClient(t)
	return NewBalanceCache(client), NewIdempotencyStore(client), mr
}
