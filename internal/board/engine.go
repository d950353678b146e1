// Package board turns a flat ticket snapshot into an ordered set of columns.
//
// The engine is a set of pure functions: Classify buckets tickets by the active grouping,
// Engine.Sort orders each bucket, Engine.Sequence orders the buckets, and Engine.Build
// composes the three and resolves display labels. None of them mutate their inputs.
package board

import (
	"golang.org/x/text/language"

	"github.com/spec-kit/kanban-board/internal/domain"
)

// Fallback selects how status and user columns are ordered.
type Fallback string

const (
	// FallbackDiscovery keeps columns in the order their first ticket appeared.
	FallbackDiscovery Fallback = "discovery"
	// FallbackAlphabetical orders columns by collation order of their keys.
	FallbackAlphabetical Fallback = "alphabetical"
)

// Options tune an Engine.
type Options struct {
	Locale   language.Tag
	Fallback Fallback
}

// Engine carries the collation locale and column fallback order. The zero value uses the
// root locale and discovery order.
type Engine struct {
	opts Options
}

// NewEngine returns an engine for the given options.
func NewEngine(opts Options) Engine {
	if opts.Fallback == "" {
		opts.Fallback = FallbackDiscovery
	}
	return Engine{opts: opts}
}

// ParseFallback validates a fallback name.
func ParseFallback(s string) (Fallback, bool) {
	switch Fallback(s) {
	case FallbackDiscovery, FallbackAlphabetical:
		return Fallback(s), true
	default:
		return "", false
	}
}

var defaultEngine = NewEngine(Options{Locale: language.Und})

// SortTickets orders tickets with the default engine.
func SortTickets(tickets []domain.Ticket, ordering Ordering) []domain.Ticket {
	return defaultEngine.Sort(tickets, ordering)
}

// SequenceGroups orders group keys with the default engine.
func SequenceGroups(keys []string, grouping Grouping) []string {
	return defaultEngine.Sequence(keys, grouping)
}

// Build assembles a board with the default engine.
func Build(snapshot domain.Snapshot, grouping Grouping, ordering Ordering) Board {
	return defaultEngine.Build(snapshot, grouping, ordering)
}
