package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/inventree/pkg/app"
	"github.com/ghuser/inventree/pkg/cache"
	"github.com/ghuser/inventree/pkg/config"
	"github.com/ghuser/inventree/pkg/logger"
	invevents "github.com/ghuser/inventree/services/inventory/domain/events"
)

// Integration tests, skipped unless REDIS_URL is set.
func TestHandleItemMutatedIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	cfg := &config.Config{RedisURL: redisURL, LogLevel: "error"}
	rc, err := cache.NewRedisClient(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	a := &app.Application{Redis: rc, Logger: logger.New(cfg)}
	handler := handleItemMutated(a)
	subtrees := cache.NewSubtreeCache(rc)
	ctx := context.Background()

	mustSet := func(t *testing.T, code string) {
		t.Helper()
		if err := subtrees.Set(ctx, code, []byte(`{}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	assertGone := func(t *testing.T, code string) {
		t.Helper()
		if _, err := subtrees.Get(ctx, code); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected %s to be invalidated, got %v", code, err)
		}
	}
	newMsg := func(t *testing.T, evt invevents.ItemMutatedEvent) *message.Message {
		t.Helper()
		payload, err := json.Marshal(evt)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		return message.NewMessage(watermill.NewUUID(), payload)
	}

	t.Run("Delete_InvalidatesDescendants", func(t *testing.T) {
		// Descendants cached on their own must not survive a subtree delete.
		for _, code := range []string{"WRK-ROOT", "WRK-MID", "WRK-LEAF", "WRK-ANC"} {
			mustSet(t, code)
		}

		evt := invevents.ItemMutatedEvent{
			EventID:    uuid.New(),
			Version:    1,
			Action:     "D",
			ItemCode:   "WRK-ROOT",
			Path:       []string{"WRK-ANC"},
			Subtree:    []string{"WRK-LEAF", "WRK-MID", "WRK-ROOT"},
			Actor:      "tester",
			OccurredAt: time.Now().UTC(),
		}
		if err := handler(ctx, newMsg(t, evt)); err != nil {
			t.Fatalf("handler failed: %v", err)
		}

		for _, code := range []string{"WRK-ROOT", "WRK-MID", "WRK-LEAF", "WRK-ANC"} {
			assertGone(t, code)
		}
	})

	t.Run("Move_InvalidatesSubtreeAndBothPaths", func(t *testing.T) {
		// A cached descendant carries the pre-move ancestor path.
		for _, code := range []string{"WRK-MOVED", "WRK-CHILD", "WRK-OLDP", "WRK-NEWP"} {
			mustSet(t, code)
		}

		evt := invevents.ItemMutatedEvent{
			EventID:      uuid.New(),
			Version:      1,
			Action:       "M",
			ItemCode:     "WRK-MOVED",
			Path:         []string{"WRK-NEWP"},
			PreviousPath: []string{"WRK-OLDP"},
			Subtree:      []string{"WRK-CHILD", "WRK-MOVED"},
			Actor:        "tester",
			OccurredAt:   time.Now().UTC(),
		}
		if err := handler(ctx, newMsg(t, evt)); err != nil {
			t.Fatalf("handler failed: %v", err)
		}

		for _, code := range []string{"WRK-MOVED", "WRK-CHILD", "WRK-OLDP", "WRK-NEWP"} {
			assertGone(t, code)
		}
	})

	t.Run("MalformedPayload_Errors", func(t *testing.T) {
		if err := handler(ctx, message.NewMessage(watermill.NewUUID(), []byte("not-json"))); err == nil {
			t.Fatal("expected error for malformed payload, got nil")
		}
	})
}
