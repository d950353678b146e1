package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/kanban-board/internal/config"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/board", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/board", "GET", 200, 5*time.Millisecond)
	m.RecordError("/board", "GET", "DATA_UNAVAILABLE")
	m.RecordBoardBuild("status", "title")
	m.RecordRefresh("ok")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/board|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/board|GET|DATA_UNAVAILABLE"])
	assert.Equal(t, int64(1), snap.BoardBuilds["status|title"])
	assert.Equal(t, int64(1), snap.Refreshes["ok"])
	assert.Equal(t, int64(10), snap.RequestDurationMS)

	snap.Requests["/board|GET|200"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/board|GET|200"])
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Second)
	m.RecordBoardBuild("a", "b")
	assert.Empty(t, m.Snapshot().Requests)
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "loud", Format: "console"}, config.AppConfig{Name: "test"})
	assert.NoError(t, err)
	assert.NotNil(t, logger)
}
