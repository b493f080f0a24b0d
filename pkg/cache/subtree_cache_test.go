package cache

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// Integration tests, skipped unless REDIS_URL is set.
func TestSubtreeCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	c := NewSubtreeCache(rc)
	ctx := context.Background()

	t.Run("Get_Miss", func(t *testing.T) {
		_, err := c.Get(ctx, "no-such-code")
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("Set_Get_CaseInsensitive", func(t *testing.T) {
		payload := []byte(`{"code":"PC42"}`)
		if err := c.Set(ctx, "PC42", payload); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := c.Get(ctx, "pc42")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("payload mismatch: got %s", got)
		}
	})

	t.Run("Delete_Multiple", func(t *testing.T) {
		if err := c.Set(ctx, "A1", []byte("{}")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := c.Set(ctx, "B2", []byte("{}")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := c.Delete(ctx, "a1", "b2"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := c.Get(ctx, "A1"); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("Delete_Empty_NoOp", func(t *testing.T) {
		if err := c.Delete(ctx); err != nil {
			t.Fatalf("expected nil for empty delete, got %v", err)
		}
	})
}
