package source

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/kanban-board/internal/domain"
	"github.com/spec-kit/kanban-board/internal/repository"
)

// CachedSource serves snapshots from a cache and falls through to upstream on a miss.
// Cache failures are logged and never fail a load.
type CachedSource struct {
	upstream Loader
	cache    repository.SnapshotCache
	ttl      time.Duration
	logger   *zap.Logger
}

// NewCachedSource wraps upstream. A zero ttl or nil cache disables caching.
func NewCachedSource(upstream Loader, cache repository.SnapshotCache, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{upstream: upstream, cache: cache, ttl: ttl, logger: logger}
}

func (s *CachedSource) enabled() bool {
	return s.cache != nil && s.ttl > 0
}

func (s *CachedSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	if s.enabled() {
		snapshot, err := s.cache.Get(ctx)
		switch {
		case err == nil:
			return snapshot, nil
		case !errors.Is(err, repository.ErrCacheMiss):
			s.logger.Warn("snapshot cache read failed", zap.Error(err))
		}
	}
	return s.Refresh(ctx)
}

// Refresh loads from upstream and replaces the cached copy.
func (s *CachedSource) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.upstream.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s.enabled() {
		if err := s.cache.Set(ctx, snapshot, s.ttl); err != nil {
			s.logger.Warn("snapshot cache write failed", zap.Error(err))
		}
	}
	return snapshot, nil
}
