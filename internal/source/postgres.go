package source

import (
	"context"

	"github.com/spec-kit/kanban-board/internal/domain"
	"github.com/spec-kit/kanban-board/internal/repository"
)

// PostgresSource builds the snapshot from the board tables.
type PostgresSource struct {
	tickets repository.TicketRepository
	users   repository.UserRepository
}

// NewPostgresSource wires the repositories into a Loader.
func NewPostgresSource(tickets repository.TicketRepository, users repository.UserRepository) *PostgresSource {
	return &PostgresSource{tickets: tickets, users: users}
}

func (s *PostgresSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{})
	if err != nil {
		return nil, unavailable("list tickets: %v", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, unavailable("list users: %v", err)
	}
	snapshot := &domain.Snapshot{Tickets: tickets, Users: users}
	snapshot.Normalize()
	return snapshot, nil
}
