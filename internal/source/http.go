package source

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/kanban-board/internal/domain"
)

// HTTPSource fetches the snapshot from an upstream JSON endpoint.
type HTTPSource struct {
	url     string
	timeout time.Duration
}

// NewHTTPSource returns a source for url. A zero timeout relies on the caller's context.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: url, timeout: timeout}
}

func (s *HTTPSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("%v", err)
	}

	agent := fiber.Get(s.url).Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if timeout := s.effectiveTimeout(ctx); timeout > 0 {
		agent.Timeout(timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, err := range errs {
			msgs = append(msgs, err.Error())
		}
		return nil, unavailable("fetch %s: %s", s.url, strings.Join(msgs, "; "))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, unavailable("fetch %s: upstream returned %d", s.url, code)
	}
	return Decode(body)
}

// effectiveTimeout is the smaller of the configured timeout and the context deadline.
func (s *HTTPSource) effectiveTimeout(ctx context.Context) time.Duration {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}
