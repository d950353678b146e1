// Package source acquires ticket snapshots for the board. Every failure to produce a
// snapshot wraps errorutil.ErrDataUnavailable; sources never retry.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spec-kit/kanban-board/internal/domain"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

// Loader produces a full snapshot in one call.
type Loader interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// Decode parses the upstream wire format {"tickets": [...], "users": [...]}.
func Decode(raw []byte) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, unavailable("decode snapshot: %v", err)
	}
	snapshot.Normalize()
	return &snapshot, nil
}

// FileSource reads a snapshot from a JSON file on disk.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable("%v", err)
	}
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, unavailable("read %s: %v", f.Path, err)
	}
	return Decode(raw)
}

func unavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrDataUnavailable, fmt.Sprintf(format, args...))
}
