package board

import "github.com/spec-kit/kanban-board/internal/domain"

// Priority labels.
const (
	LabelNoPriority = "No priority"
	LabelLow        = "Low"
	LabelMedium     = "Medium"
	LabelHigh       = "High"
	LabelUrgent     = "Urgent"

	// LabelUnknown is used for priorities outside 0..4. It has no display rank.
	LabelUnknown = "Unknown"
)

var priorityLabels = map[domain.TicketPriority]string{
	domain.TicketPriorityNone:   LabelNoPriority,
	domain.TicketPriorityLow:    LabelLow,
	domain.TicketPriorityMedium: LabelMedium,
	domain.TicketPriorityHigh:   LabelHigh,
	domain.TicketPriorityUrgent: LabelUrgent,
}

// displayOrder is the column order for priority groups. It is not the numeric scale.
var displayOrder = []string{LabelNoPriority, LabelUrgent, LabelHigh, LabelMedium, LabelLow}

// PriorityLabel returns the label for a priority level, or LabelUnknown.
func PriorityLabel(p domain.TicketPriority) string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return LabelUnknown
}

// PriorityFromLabel is the inverse of PriorityLabel for the five defined labels.
func PriorityFromLabel(label string) (domain.TicketPriority, bool) {
	for p, l := range priorityLabels {
		if l == label {
			return p, true
		}
	}
	return 0, false
}

// DisplayRank returns the column position of a priority label. Unranked labels return false.
func DisplayRank(label string) (int, bool) {
	for i, l := range displayOrder {
		if l == label {
			return i, true
		}
	}
	return 0, false
}
