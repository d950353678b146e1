package domain

// TicketStatus is the workflow label of a ticket. Values outside the known set are kept
// verbatim and treated as opaque grouping keys.
type TicketStatus string

const (
	TicketStatusBacklog    TicketStatus = "Backlog"
	TicketStatusTodo       TicketStatus = "Todo"
	TicketStatusInProgress TicketStatus = "In progress"
	TicketStatusDone       TicketStatus = "Done"
	TicketStatusCanceled   TicketStatus = "Canceled"
)

// TicketPriority is the numeric urgency of a ticket, 4 being most urgent.
type TicketPriority int

const (
	TicketPriorityNone   TicketPriority = 0
	TicketPriorityLow    TicketPriority = 1
	TicketPriorityMedium TicketPriority = 2
	TicketPriorityHigh   TicketPriority = 3
	TicketPriorityUrgent TicketPriority = 4
)

// Ticket is a read-only work item as supplied by the upstream system.
type Ticket struct {
	ID       ID             `json:"id"`
	Title    string         `json:"title"`
	Tag      []string       `json:"tag"`
	Status   TicketStatus   `json:"status"`
	Priority TicketPriority `json:"priority"`
	UserID   ID             `json:"userId"`
}

// FirstTag returns the first tag, the only one shown on a card.
func (t Ticket) FirstTag() string {
	if len(t.Tag) == 0 {
		return ""
	}
	return t.Tag[0]
}
