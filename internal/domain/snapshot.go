package domain

// Snapshot is the full set of tickets and users a board is computed from.
type Snapshot struct {
	Tickets []Ticket `json:"tickets"`
	Users   []User   `json:"users"`
}

// Normalize replaces missing sequences with empty ones.
func (s *Snapshot) Normalize() {
	if s.Tickets == nil {
		s.Tickets = []Ticket{}
	}
	if s.Users == nil {
		s.Users = []User{}
	}
}
