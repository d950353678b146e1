package board

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/spec-kit/kanban-board/internal/domain"
)

// Sort returns a new slice with tickets ordered by the given key. Priority sorts most
// urgent first; title sorts by collation order. Both are stable. An unknown ordering
// returns the tickets in input order.
func (e Engine) Sort(tickets []domain.Ticket, ordering Ordering) []domain.Ticket {
	out := make([]domain.Ticket, len(tickets))
	copy(out, tickets)

	switch ordering {
	case OrderByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority > out[j].Priority
		})
	case OrderByTitle:
		// Collators keep scratch buffers and must not be shared across goroutines.
		c := collate.New(e.opts.Locale)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	}
	return out
}
