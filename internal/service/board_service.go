package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/spec-kit/kanban-board/internal/board"
	"github.com/spec-kit/kanban-board/internal/config"
	"github.com/spec-kit/kanban-board/internal/domain"
	"github.com/spec-kit/kanban-board/internal/events"
	"github.com/spec-kit/kanban-board/internal/observability"
	"github.com/spec-kit/kanban-board/internal/source"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

// Refresher reloads the snapshot from upstream, bypassing any cache.
type Refresher interface {
	Refresh(ctx context.Context) (*domain.Snapshot, error)
}

// BoardQuery carries the display controls named on a request. Empty fields fall back to
// the viewer's saved preferences, then to the configured defaults.
type BoardQuery struct {
	Grouping string
	Ordering string
}

// BoardService loads snapshots and computes boards.
type BoardService struct {
	loader      source.Loader
	refresher   Refresher
	preferences *PreferenceService
	engine      board.Engine
	defaults    Selection
	dispatcher  events.Dispatcher
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// BoardDependencies bundles collaborators for the board service.
type BoardDependencies struct {
	Loader      source.Loader
	Refresher   Refresher
	Preferences *PreferenceService
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// Selection is a validated grouping and ordering pair.
type Selection struct {
	Grouping board.Grouping
	Ordering board.Ordering
}

// NewEngine builds the board engine from configuration.
func NewEngine(cfg config.BoardConfig) (board.Engine, error) {
	locale, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		return board.Engine{}, fmt.Errorf("invalid BOARD_COLLATION_LOCALE %q: %w", cfg.CollationLocale, err)
	}
	fallback, ok := board.ParseFallback(cfg.GroupFallback)
	if !ok {
		return board.Engine{}, fmt.Errorf("invalid BOARD_GROUP_FALLBACK %q", cfg.GroupFallback)
	}
	return board.NewEngine(board.Options{Locale: locale, Fallback: fallback}), nil
}

// DefaultSelection validates the configured default grouping and ordering.
func DefaultSelection(cfg config.BoardConfig) (Selection, error) {
	g, err := board.ParseGrouping(cfg.DefaultGrouping)
	if err != nil {
		return Selection{}, fmt.Errorf("BOARD_DEFAULT_GROUPING: %w", err)
	}
	o, err := board.ParseOrdering(cfg.DefaultOrdering)
	if err != nil {
		return Selection{}, fmt.Errorf("BOARD_DEFAULT_ORDERING: %w", err)
	}
	return Selection{Grouping: g, Ordering: o}, nil
}

// NewBoardService constructs the service.
func NewBoardService(engine board.Engine, defaults Selection, deps BoardDependencies) *BoardService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardService{
		loader:      deps.Loader,
		refresher:   deps.Refresher,
		preferences: deps.Preferences,
		engine:      engine,
		defaults:    defaults,
		dispatcher:  deps.Dispatcher,
		metrics:     deps.Metrics,
		logger:      logger,
	}
}

// Snapshot returns the current snapshot.
func (s *BoardService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		return nil, apperrors.NewDataUnavailable(err)
	}
	return snapshot, nil
}

// Resolve picks the grouping and ordering for a request.
func (s *BoardService) Resolve(ctx context.Context, viewer *domain.Viewer, q BoardQuery) (Selection, error) {
	sel := s.defaults
	if viewer != nil && s.preferences != nil {
		if saved, ok := s.preferences.Saved(ctx, viewer.ID); ok {
			sel = saved
		}
	}

	if q.Grouping != "" {
		g, err := board.ParseGrouping(q.Grouping)
		if err != nil {
			return Selection{}, apperrors.NewValidationError(err.Error(), map[string]any{"grouping": q.Grouping})
		}
		sel.Grouping = g
	}
	if q.Ordering != "" {
		o, err := board.ParseOrdering(q.Ordering)
		if err != nil {
			return Selection{}, apperrors.NewValidationError(err.Error(), map[string]any{"ordering": q.Ordering})
		}
		sel.Ordering = o
	}
	return sel, nil
}

// Board computes the board for a request.
func (s *BoardService) Board(ctx context.Context, viewer *domain.Viewer, q BoardQuery) (board.Board, error) {
	sel, err := s.Resolve(ctx, viewer, q)
	if err != nil {
		return board.Board{}, err
	}
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return board.Board{}, err
	}

	b := s.engine.Build(*snapshot, sel.Grouping, sel.Ordering)
	s.metrics.RecordBoardBuild(string(sel.Grouping), string(sel.Ordering))
	s.logger.Debug("board built",
		zap.String("grouping", string(sel.Grouping)),
		zap.String("ordering", string(sel.Ordering)),
		zap.Int("columns", len(b.Columns)),
		zap.Int("tickets", b.TicketCount()))
	return b, nil
}

// Refresh reloads the snapshot from upstream and announces the outcome.
func (s *BoardService) Refresh(ctx context.Context) error {
	start := time.Now()
	var (
		snapshot *domain.Snapshot
		err      error
	)
	if s.refresher != nil {
		snapshot, err = s.refresher.Refresh(ctx)
	} else {
		snapshot, err = s.loader.Load(ctx)
	}

	if err != nil {
		s.metrics.RecordRefresh("failed")
		s.publish(ctx, events.NewEvent(events.EventSnapshotFailed, events.SnapshotFailedPayload{Reason: err.Error()}))
		return apperrors.NewDataUnavailable(err)
	}

	s.metrics.RecordRefresh("ok")
	s.publish(ctx, events.NewEvent(events.EventSnapshotRefreshed, events.SnapshotRefreshedPayload{
		Tickets:  len(snapshot.Tickets),
		Users:    len(snapshot.Users),
		Duration: time.Since(start).Milliseconds(),
	}))
	return nil
}

func (s *BoardService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
