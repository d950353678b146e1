package board

import "github.com/spec-kit/kanban-board/internal/domain"

// Groups is the result of classification. Keys lists group keys in the order they were
// first encountered; Buckets holds each group's tickets in input order.
type Groups struct {
	Keys    []string
	Buckets map[string][]domain.Ticket
}

// Len returns the number of groups.
func (g Groups) Len() int {
	return len(g.Keys)
}

// GroupKey returns the key a ticket is classified under.
func GroupKey(t domain.Ticket, grouping Grouping) (string, bool) {
	switch grouping {
	case GroupByStatus:
		return string(t.Status), true
	case GroupByUser:
		return string(t.UserID), true
	case GroupByPriority:
		return PriorityLabel(t.Priority), true
	default:
		return "", false
	}
}

// Classify partitions tickets into groups. An unknown grouping yields no groups.
func Classify(tickets []domain.Ticket, grouping Grouping) Groups {
	groups := Groups{
		Keys:    []string{},
		Buckets: make(map[string][]domain.Ticket),
	}
	if !grouping.Valid() {
		return groups
	}
	for _, t := range tickets {
		key, _ := GroupKey(t, grouping)
		if _, seen := groups.Buckets[key]; !seen {
			groups.Keys = append(groups.Keys, key)
		}
		groups.Buckets[key] = append(groups.Buckets[key], t)
	}
	return groups
}
