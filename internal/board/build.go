package board

import "github.com/spec-kit/kanban-board/internal/domain"

// Column is one rendered group.
type Column struct {
	Key     string          `json:"key"`
	Label   string          `json:"display_label,omitempty"`
	Count   int             `json:"ticket_count"`
	Tickets []domain.Ticket `json:"tickets"`
	// User is set for user columns whose id resolved to a known user.
	User *domain.User `json:"user,omitempty"`
}

// Board is the ordered column set handed to a renderer.
type Board struct {
	Grouping Grouping `json:"grouping"`
	Ordering Ordering `json:"ordering"`
	Columns  []Column `json:"columns"`
}

// TicketCount returns the number of tickets across all columns.
func (b Board) TicketCount() int {
	n := 0
	for _, c := range b.Columns {
		n += c.Count
	}
	return n
}

// Build classifies, sorts and sequences the snapshot.
func (e Engine) Build(snapshot domain.Snapshot, grouping Grouping, ordering Ordering) Board {
	groups := Classify(snapshot.Tickets, grouping)
	keys := e.Sequence(groups.Keys, grouping)

	columns := make([]Column, 0, len(keys))
	for _, key := range keys {
		tickets := e.Sort(groups.Buckets[key], ordering)
		col := Column{
			Key:     key,
			Count:   len(tickets),
			Tickets: tickets,
		}
		if grouping == GroupByUser {
			if u, ok := FindUser(snapshot.Users, domain.ID(key)); ok {
				col.Label = u.Name
				col.User = &u
			}
		} else {
			col.Label = key
		}
		columns = append(columns, col)
	}

	return Board{
		Grouping: grouping,
		Ordering: ordering,
		Columns:  columns,
	}
}
