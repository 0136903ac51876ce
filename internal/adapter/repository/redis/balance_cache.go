package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/gotrialbalance/internal/usecase"
)

const (
	balanceVersionKey = "trialbalance:version"
	// BumpChannel carries the new version after every Bump.
	BumpChannel = "trialbalance.bump"
)

// BalanceCache implements usecase.BalanceCache. Keys embed a global version
// so that bumping it orphans every cached balance at once.
type BalanceCache struct {
	client *redis.Client
	prefix string
}

// NewBalanceCache creates a new BalanceCache.
func NewBalanceCache(client *redis.Client) *BalanceCache {
	return &BalanceCache{
		client: client,
		prefix: "cache:",
	}
}

// Version returns the current cache version, initialising it when missing.
func (c *BalanceCache) Version(ctx context.Context) (int64, error) {
	ver, err := c.client.Get(ctx, balanceVersionKey).Int64()
	if errors.Is(err, redis.Nil) || (err == nil && ver <= 0) {
		// SETNX keeps a concurrent Bump from being overwritten.
		if err := c.client.SetNX(ctx, balanceVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return c.client.Get(ctx, balanceVersionKey).Int64()
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// Get retrieves a cached balance.
func (c *BalanceCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrCacheMiss
	}
	return raw, err
}

// Set stores a balance with TTL.
func (c *BalanceCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Bump invalidates every cached balance by incrementing the version and
// announces the new version to other instances.
func (c *BalanceCache) Bump(ctx context.Context) error {
	ver, err := c.client.Incr(ctx, balanceVersionKey).Result()
	if err != nil {
		return err
	}
	return c.client.Publish(ctx, BumpChannel, strconv.FormatInt(ver, 10)).Err()
}

// Listen calls onBump for every version announced on BumpChannel until ctx
// is done. The subscription is active when Listen returns.
func (c *BalanceCache) Listen(ctx context.Context, onBump func(version int64)) error {
	pubsub := c.client.Subscribe(ctx, BumpChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return err
	}

	go func() {
		defer func() { _ = pubsub.Close() }()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ver, err := strconv.ParseInt(msg.Payload, 10, 64)
				if err != nil {
					continue
				}
				onBump(ver)
			}
		}
	}()
	return nil
}
