package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spec-kit/kanban-board/internal/domain"
	"github.com/spec-kit/kanban-board/internal/repository"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

type stubLoader struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot
	fail     bool
	loads    int
	refresh  int
}

func (l *stubLoader) Load(context.Context) (*domain.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loads++
	if l.fail {
		return nil, fmt.Errorf("%w: upstream down", apperrors.ErrDataUnavailable)
	}
	return l.snapshot, nil
}

func (l *stubLoader) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	l.mu.Lock()
	l.refresh++
	l.mu.Unlock()
	return l.Load(ctx)
}

type memoryPreferences struct {
	mu    sync.Mutex
	prefs map[string]domain.Preferences
	err   error
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{prefs: map[string]domain.Preferences{}}
}

func (m *memoryPreferences) Get(_ context.Context, viewerID string) (*domain.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.prefs[viewerID]
	if !ok {
		return nil, repository.ErrNoPreferences
	}
	return &p, nil
}

func (m *memoryPreferences) Put(_ context.Context, viewerID string, prefs domain.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.prefs[viewerID] = prefs
	return nil
}

var errRedisDown = errors.New("redis: connection refused")

func sampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Tickets: []domain.Ticket{
			{ID: "CAM-1", Title: "B", Status: "Todo", Priority: 2, UserID: "usr-1"},
			{ID: "CAM-2", Title: "A", Status: "Todo", Priority: 4, UserID: "usr-1"},
			{ID: "CAM-3", Title: "C", Status: "Done", Priority: 0, UserID: "usr-9"},
		},
		Users: []domain.User{{ID: "usr-1", Name: "Ann"}},
	}
}
