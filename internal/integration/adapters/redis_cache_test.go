package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	server := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: server.Addr()})
}

func TestRedisCacheGetMiss(t *testing.T) {
	cache := NewRedisCache(newTestRedis(t))

	value, err := cache.Get(context.Background(), "sim:missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != nil {
		t.Errorf("expected nil on miss, got %q", value)
	}
}

func TestRedisCacheSetGetDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisCache(newTestRedis(t))

	if err := cache.Set(ctx, "sim:abc", []byte(`{"viable":true}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, err := cache.Get(ctx, "sim:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(value) != `{"viable":true}` {
		t.Errorf("unexpected value %q", value)
	}

	if err := cache.Delete(ctx, "sim:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	value, err = cache.Get(ctx, "sim:abc")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if value != nil {
		t.Errorf("expected nil after delete, got %q", value)
	}
}

func TestRedisCacheDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisCache(newTestRedis(t))

	userA := "sim:" + uuid.NewString()
	userB := "sim:" + uuid.NewString()

	entries := map[string]string{
		userA + ":k1": "a1",
		userA + ":k2": "a2",
		userB + ":k1": "b1",
	}
	for key, value := range entries {
		if err := cache.Set(ctx, key, []byte(value), time.Minute); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}

	if err := cache.DeleteByPrefix(ctx, userA); err != nil {
		t.Fatalf("DeleteByPrefix: %v", err)
	}

	for _, key := range []string{userA + ":k1", userA + ":k2"} {
		value, err := cache.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get %s: %v", key, err)
		}
		if value != nil {
			t.Errorf("expected %s to be deleted", key)
		}
	}

	value, err := cache.Get(ctx, userB+":k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(value) != "b1" {
		t.Errorf("other user's entry should survive, got %q", value)
	}
}

func TestRedisQuotaFixedWindow(t *testing.T) {
	ctx := context.Background()
	quota := NewRedisQuotaServiceWithConfig(newTestRedis(t), 3, time.Minute)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		result, err := quota.Consume(ctx, userID, "simulation")
		if err != nil {
			t.Fatalf("Consume %d: %v", i+1, err)
		}
		if !result.Allowed {
			t.Fatalf("consume %d should be allowed", i+1)
		}
		if result.Remaining != 3-(i+1) {
			t.Errorf("consume %d: expected %d remaining, got %d", i+1, 3-(i+1), result.Remaining)
		}
	}

	result, err := quota.Consume(ctx, userID, "simulation")
	if err != nil {
		t.Fatalf("Consume over limit: %v", err)
	}
	if result.Allowed {
		t.Error("expected consumption over the limit to be denied")
	}
	if result.Remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", result.Remaining)
	}
	if result.ResetsAt.IsZero() {
		t.Error("expected resets_at to be populated when denied")
	}

	other, err := quota.Consume(ctx, uuid.New(), "simulation")
	if err != nil {
		t.Fatalf("Consume for other user: %v", err)
	}
	if !other.Allowed {
		t.Error("quota must be tracked per user")
	}
}
