package source

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/kanban-board/internal/domain"
	"github.com/spec-kit/kanban-board/internal/repository"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

const samplePayload = `{
	"tickets": [
		{"id": "CAM-1", "title": "Update user profile page UI", "tag": ["Feature request"], "userId": "usr-1", "status": "Todo", "priority": 4},
		{"id": "CAM-2", "title": "Add multi-language support", "tag": ["Feature request"], "userId": "usr-2", "status": "In progress", "priority": 3}
	],
	"users": [
		{"id": "usr-1", "name": "Anoop sharma", "available": false},
		{"id": "usr-2", "name": "Yogesh", "available": true}
	]
}`

func startUpstream(t *testing.T, handler fiber.Handler) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/snapshot", handler)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String() + "/snapshot"
}

func TestHTTPSourceLoads(t *testing.T) {
	url := startUpstream(t, func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(samplePayload)
	})

	snap, err := NewHTTPSource(url, 2*time.Second).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Tickets, 2)
	require.Len(t, snap.Users, 2)
	assert.Equal(t, domain.ID("usr-2"), snap.Tickets[1].UserID)
	assert.Equal(t, "Yogesh", snap.Users[1].Name)
}

func TestHTTPSourceUpstreamError(t *testing.T) {
	url := startUpstream(t, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusBadGateway)
	})

	_, err := NewHTTPSource(url, time.Second).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPSourceBadBody(t *testing.T) {
	url := startUpstream(t, func(c *fiber.Ctx) error {
		return c.SendString("<html>")
	})

	_, err := NewHTTPSource(url, time.Second).Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}

func TestHTTPSourceUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = NewHTTPSource("http://"+addr+"/x", time.Second).Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}

func TestHTTPSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPSource("http://127.0.0.1:1/x", 0).Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}

func TestDecodeMissingArrays(t *testing.T) {
	snap, err := Decode([]byte(`{"tickets": null}`))
	require.NoError(t, err)
	assert.NotNil(t, snap.Tickets)
	assert.NotNil(t, snap.Users)
	assert.Empty(t, snap.Tickets)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(samplePayload), 0o600))

	snap, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Tickets, 2)

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
}

type countingLoader struct {
	calls    int
	snapshot *domain.Snapshot
	err      error
}

func (l *countingLoader) Load(context.Context) (*domain.Snapshot, error) {
	l.calls++
	return l.snapshot, l.err
}

type memoryCache struct {
	snapshot *domain.Snapshot
	getErr   error
	sets     int
}

func (c *memoryCache) Get(context.Context) (*domain.Snapshot, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.snapshot == nil {
		return nil, repository.ErrCacheMiss
	}
	return c.snapshot, nil
}

func (c *memoryCache) Set(_ context.Context, s *domain.Snapshot, _ time.Duration) error {
	c.snapshot = s
	c.sets++
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.snapshot = nil
	return nil
}

func TestCachedSourceReadThrough(t *testing.T) {
	upstream := &countingLoader{snapshot: &domain.Snapshot{Tickets: []domain.Ticket{{ID: "1"}}}}
	cache := &memoryCache{}
	src := NewCachedSource(upstream, cache, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		snap, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, snap.Tickets, 1)
	}
	assert.Equal(t, 1, upstream.calls)
	assert.Equal(t, 1, cache.sets)

	_, err := src.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
}

func TestCachedSourceCacheFailureFallsThrough(t *testing.T) {
	upstream := &countingLoader{snapshot: &domain.Snapshot{}}
	cache := &memoryCache{getErr: errors.New("connection refused")}
	src := NewCachedSource(upstream, cache, time.Minute, zap.NewNop())

	_, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.calls)
}

func TestCachedSourceDisabled(t *testing.T) {
	upstream := &countingLoader{snapshot: &domain.Snapshot{}}
	src := NewCachedSource(upstream, &memoryCache{}, 0, zap.NewNop())

	_, _ = src.Load(context.Background())
	_, _ = src.Load(context.Background())
	assert.Equal(t, 2, upstream.calls)
}

func TestCachedSourcePropagatesUpstreamFailure(t *testing.T) {
	upstream := &countingLoader{err: unavailable("boom")}
	cache := &memoryCache{}
	src := NewCachedSource(upstream, cache, time.Minute, zap.NewNop())

	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	assert.Zero(t, cache.sets)
}
