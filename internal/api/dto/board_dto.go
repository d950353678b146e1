package dto

import "github.com/spec-kit/kanban-board/internal/domain"

// BoardResponse is the column-by-column payload for a renderer.
type BoardResponse struct {
	Grouping    string           `json:"grouping"`
	Ordering    string           `json:"ordering"`
	TicketCount int              `json:"ticket_count"`
	Columns     []ColumnResponse `json:"columns"`
}

// ColumnResponse is one board column. DisplayLabel is omitted when a user column's id
// did not resolve.
type ColumnResponse struct {
	Key          string           `json:"key"`
	DisplayLabel *string          `json:"display_label"`
	TicketCount  int              `json:"ticket_count"`
	User         *UserResponse    `json:"user,omitempty"`
	Tickets      []TicketResponse `json:"tickets"`
}

// TicketResponse is a card.
type TicketResponse struct {
	ID            domain.ID `json:"id"`
	Title         string    `json:"title"`
	Tag           []string  `json:"tag"`
	Status        string    `json:"status"`
	Priority      int       `json:"priority"`
	PriorityLabel string    `json:"priority_label"`
	UserID        domain.ID `json:"userId"`
}

// UserResponse describes an assignee.
type UserResponse struct {
	ID   domain.ID `json:"id"`
	Name string    `json:"name"`
	Img  string    `json:"img,omitempty"`
}

// PreferencesRequest payload for saving display controls.
type PreferencesRequest struct {
	Grouping string `json:"grouping"`
	Ordering string `json:"ordering"`
}

// PreferencesResponse returns effective display controls.
type PreferencesResponse struct {
	Grouping string `json:"grouping"`
	Ordering string `json:"ordering"`
}
