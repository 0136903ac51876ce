package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/gotrialbalance/internal/usecase"
)

func TestBumpKeepsIdempotencyKeys(t *testing.T) {
	cache, store, mr := newTestStores(t)
	ctx := context.Background()

	if _, err := cache.Version(ctx); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if err := cache.Set(ctx, "1:balance", []byte("rows"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if exists, _, err := store.CheckAndSet(ctx, "rates-batch", []byte("saved"), time.Hour); err != nil || exists {
		t.Fatalf("expected new idempotency key, got exists=%v err=%v", exists, err)
	}

	if err := cache.Bump(ctx); err != nil {
		t.Fatalf("bump failed: %v", err)
	}

	ver, err := cache.Version(ctx)
	if err != nil || ver != 2 {
		t.Fatalf("expected version 2, got %d err=%v", ver, err)
	}
	if _, err := cache.Get(ctx, "2:balance"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected cache miss under new version, got %v", err)
	}

	exists, resp, err := store.CheckAndSet(ctx, "rates-batch", nil, time.Hour)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}
	if !exists || string(resp) != "saved" {
		t.Fatalf("expected stored response after bump, got exists=%v resp=%s", exists, resp)
	}
	if !mr.Exists(store.prefix + "rates-batch") {
		t.Fatalf("expected idempotency key to survive bump")
	}
}
