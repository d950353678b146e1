package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/kanban-board/internal/board"
	"github.com/spec-kit/kanban-board/internal/domain"
	"github.com/spec-kit/kanban-board/internal/events"
	"github.com/spec-kit/kanban-board/internal/repository"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

// PreferenceService stores each viewer's display controls.
type PreferenceService struct {
	repo       repository.PreferenceRepository
	defaults   Selection
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewPreferenceService constructs the service.
func NewPreferenceService(repo repository.PreferenceRepository, defaults Selection, dispatcher events.Dispatcher, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{repo: repo, defaults: defaults, dispatcher: dispatcher, logger: logger}
}

// Saved returns the viewer's stored selection. Missing, invalid or unreadable preferences
// report false so callers use their defaults.
func (s *PreferenceService) Saved(ctx context.Context, viewerID string) (Selection, bool) {
	prefs, err := s.repo.Get(ctx, viewerID)
	if err != nil {
		if !errors.Is(err, repository.ErrNoPreferences) {
			s.logger.Warn("preference lookup failed", zap.String("viewer", viewerID), zap.Error(err))
		}
		return Selection{}, false
	}
	g, gerr := board.ParseGrouping(prefs.Grouping)
	o, oerr := board.ParseOrdering(prefs.Ordering)
	if gerr != nil || oerr != nil {
		s.logger.Warn("ignoring invalid saved preferences", zap.String("viewer", viewerID))
		return Selection{}, false
	}
	return Selection{Grouping: g, Ordering: o}, true
}

// Get returns the viewer's effective preferences.
func (s *PreferenceService) Get(ctx context.Context, viewerID string) domain.Preferences {
	sel, ok := s.Saved(ctx, viewerID)
	if !ok {
		sel = s.defaults
	}
	return domain.Preferences{Grouping: string(sel.Grouping), Ordering: string(sel.Ordering)}
}

// Put validates and stores the viewer's preferences. Empty fields keep their current value.
func (s *PreferenceService) Put(ctx context.Context, viewerID string, prefs domain.Preferences) (domain.Preferences, error) {
	current := s.Get(ctx, viewerID)
	if prefs.Grouping == "" {
		prefs.Grouping = current.Grouping
	}
	if prefs.Ordering == "" {
		prefs.Ordering = current.Ordering
	}

	details := map[string]any{}
	if _, err := board.ParseGrouping(prefs.Grouping); err != nil {
		details["grouping"] = prefs.Grouping
	}
	if _, err := board.ParseOrdering(prefs.Ordering); err != nil {
		details["ordering"] = prefs.Ordering
	}
	if len(details) > 0 {
		return domain.Preferences{}, apperrors.NewValidationError("invalid display controls", details)
	}

	if err := s.repo.Put(ctx, viewerID, prefs); err != nil {
		return domain.Preferences{}, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		event := events.NewEvent(events.EventPreferencesSaved, events.PreferencesSavedPayload{
			ViewerID: viewerID,
			Grouping: prefs.Grouping,
			Ordering: prefs.Ordering,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return prefs, nil
}
