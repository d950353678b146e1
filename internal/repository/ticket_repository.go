package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/kanban-board/internal/domain"
)

// TicketFilter narrows the tickets read for a board. Empty fields do not filter.
type TicketFilter struct {
	Statuses []domain.TicketStatus
	UserIDs  []domain.ID
}

// TicketRepository reads tickets from Postgres.
type TicketRepository interface {
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, title, tags, status, priority, user_id`

func (r *ticketRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM board_tickets WHERE id=$1`
	rows, err := r.pool.Query(ctx, query, string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tickets, err := scanTickets(rows)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &tickets[0], nil
}

// List returns tickets in insertion order, which is the order the board discovers groups in.
func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, string(status))
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if len(filter.UserIDs) > 0 {
		placeholders := make([]string, len(filter.UserIDs))
		for i, id := range filter.UserIDs {
			args = append(args, string(id))
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("user_id IN (%s)", strings.Join(placeholders, ",")))
	}

	query := fmt.Sprintf(`SELECT %s FROM board_tickets WHERE %s ORDER BY position ASC`,
		ticketColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	result := []domain.Ticket{}
	for rows.Next() {
		var (
			ticket   domain.Ticket
			id       string
			status   string
			priority int
			userID   string
		)
		if err := rows.Scan(
			&id,
			&ticket.Title,
			&ticket.Tag,
			&status,
			&priority,
			&userID,
		); err != nil {
			return nil, err
		}
		ticket.ID = domain.ID(id)
		ticket.Status = domain.TicketStatus(status)
		ticket.Priority = domain.TicketPriority(priority)
		ticket.UserID = domain.ID(userID)
		result = append(result, ticket)
	}
	return result, rows.Err()
}
