package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	// SubtreeCacheTTL is the time-to-live for cached subtrees.
	SubtreeCacheTTL = 1 * time.Hour

	subtreeCacheKeyPrefix = "subtree"
)

// SubtreeCache stores serialized item subtrees in Redis keyed by normalized
// item code. The payload is an opaque JSON blob owned by the application
// layer; this package never interprets it. Keys are case-insensitive because
// item codes are.
type SubtreeCache struct {
	client *RedisClient
}

// NewSubtreeCache creates a SubtreeCache backed by the given RedisClient.
func NewSubtreeCache(r *RedisClient) *SubtreeCache {
	return &SubtreeCache{client: r}
}

// Get retrieves the cached payload for an item code.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *SubtreeCache) Get(ctx context.Context, code string) ([]byte, error) {
	payload, err := c.client.Client().Get(ctx, c.key(code)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return payload, nil
}

// Set writes the payload for an item code with the subtree TTL.
func (c *SubtreeCache) Set(ctx context.Context, code string, payload []byte) error {
	if err := c.client.Client().Set(ctx, c.key(code), payload, SubtreeCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes the cached payloads for the given item codes. Mutations
// delete the mutated node, every ancestor on its path and, for deletes and
// moves, every node of the affected subtree, since all of their cached
// entries embed or describe the changed nodes.
func (c *SubtreeCache) Delete(ctx context.Context, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(codes))
	for _, code := range codes {
		keys = append(keys, c.key(code))
	}
	if err := c.client.Client().Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "subtree:{lowercased code}"
func (c *SubtreeCache) key(code string) string {
	return fmt.Sprintf("%s:%s", subtreeCacheKeyPrefix, strings.ToLower(code))
}
