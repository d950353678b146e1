package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/kanban-board/internal/domain"
)

// ErrNoPreferences is returned when a viewer has never saved display controls.
var ErrNoPreferences = errors.New("no saved preferences")

// PreferenceRepository persists a viewer's board display controls.
type PreferenceRepository interface {
	Get(ctx context.Context, viewerID string) (*domain.Preferences, error)
	Put(ctx context.Context, viewerID string, prefs domain.Preferences) error
}

type redisPreferenceRepository struct {
	client redis.Cmdable
}

// NewPreferenceRepository returns a Redis hash-backed implementation.
func NewPreferenceRepository(client redis.Cmdable) PreferenceRepository {
	return &redisPreferenceRepository{client: client}
}

func preferenceKey(viewerID string) string {
	return "board:prefs:" + viewerID
}

func (r *redisPreferenceRepository) Get(ctx context.Context, viewerID string) (*domain.Preferences, error) {
	fields, err := r.client.HGetAll(ctx, preferenceKey(viewerID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNoPreferences
	}
	return &domain.Preferences{
		Grouping: fields["grouping"],
		Ordering: fields["ordering"],
	}, nil
}

func (r *redisPreferenceRepository) Put(ctx context.Context, viewerID string, prefs domain.Preferences) error {
	return r.client.HSet(ctx, preferenceKey(viewerID),
		"grouping", prefs.Grouping,
		"ordering", prefs.Ordering,
	).Err()
}
