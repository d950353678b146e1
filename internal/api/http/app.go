package http

import (
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/kanban-board/internal/observability"
)

// AppConfig carries the ambient dependencies of the HTTP app.
type AppConfig struct {
	Name           string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	RequestTimeout time.Duration
}
