package board

import "fmt"

// Grouping selects the classification dimension.
type Grouping string

const (
	GroupByStatus   Grouping = "status"
	GroupByUser     Grouping = "user"
	GroupByPriority Grouping = "priority"
)

// Ordering selects the comparison key inside a column.
type Ordering string

const (
	OrderByPriority Ordering = "priority"
	OrderByTitle    Ordering = "title"
)

// Valid reports whether g is a known grouping.
func (g Grouping) Valid() bool {
	switch g {
	case GroupByStatus, GroupByUser, GroupByPriority:
		return true
	default:
		return false
	}
}

// Valid reports whether o is a known ordering.
func (o Ordering) Valid() bool {
	switch o {
	case OrderByPriority, OrderByTitle:
		return true
	default:
		return false
	}
}

// ParseGrouping validates a grouping name.
func ParseGrouping(s string) (Grouping, error) {
	g := Grouping(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown grouping %q", s)
	}
	return g, nil
}

// ParseOrdering validates an ordering name.
func ParseOrdering(s string) (Ordering, error) {
	o := Ordering(s)
	if !o.Valid() {
		return "", fmt.Errorf("unknown ordering %q", s)
	}
	return o, nil
}
