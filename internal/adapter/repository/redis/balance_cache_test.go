package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/gotrialbalance/internal/usecase"
)

func TestBalanceCache_VersionInitialises(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client)
	ver, err := cache.Version(context.Background())
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if ver != 1 {
		t.Fatalf("expected version 1, got %d", ver)
	}

	stored, err := mr.Get(balanceVersionKey)
	if err != nil || stored != "1" {
		t.Fatalf("expected stored version 1, got %q err=%v", stored, err)
	}
}

func TestBalanceCache_SetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client)
	ctx := context.Background()

	if _, err := cache.Get(ctx, "missing"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	if err := cache.Set(ctx, "tb:1", []byte(`{"x":1}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	raw, err := cache.Get(ctx, "tb:1")
	if err != nil || string(raw) != `{"x":1}` {
		t.Fatalf("unexpected value %q err=%v", raw, err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := cache.Get(ctx, "tb:1"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestBalanceCache_BumpNotifiesListeners(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := cache.Version(ctx); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	got := make(chan int64, 1)
	if err := cache.Listen(ctx, func(v int64) { got <- v }); err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	if err := cache.Bump(ctx); err != nil {
		t.Fatalf("bump failed: %v", err)
	}

	select {
	case v := <-got:
		if v != 2 {
			t.Fatalf("expected version 2, got %d", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no bump notification received")
	}

	ver, err := cache.Version(ctx)
	if err != nil || ver != 2 {
		t.Fatalf("expected version 2, got %d err=%v", ver, err)
	}
}
