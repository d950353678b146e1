package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/kanban-board/internal/domain"
)

// ErrCacheMiss is returned when no cached snapshot exists.
var ErrCacheMiss = errors.New("snapshot not cached")

const snapshotKey = "board:snapshot"

// SnapshotCache stores the last fetched snapshot.
type SnapshotCache interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
	Set(ctx context.Context, snapshot *domain.Snapshot, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type redisSnapshotCache struct {
	client redis.Cmdable
}

// NewSnapshotCache returns a Redis-backed cache.
func NewSnapshotCache(client redis.Cmdable) SnapshotCache {
	return &redisSnapshotCache{client: client}
}

func (c *redisSnapshotCache) Get(ctx context.Context) (*domain.Snapshot, error) {
	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode cached snapshot: %w", err)
	}
	snapshot.Normalize()
	return &snapshot, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, snapshot *domain.Snapshot, ttl time.Duration) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return c.client.Set(ctx, snapshotKey, raw, ttl).Err()
}

func (c *redisSnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotKey).Err()
}
