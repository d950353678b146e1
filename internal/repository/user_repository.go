package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/kanban-board/internal/domain"
)

// UserRepository reads assignable users from Postgres.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT id, name, img FROM board_users ORDER BY position ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	const query = `SELECT id, name, img FROM board_users WHERE id=$1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, string(id)))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		user domain.User
		id   string
	)
	if err := row.Scan(&id, &user.Name, &user.Img); err != nil {
		return domain.User{}, err
	}
	user.ID = domain.ID(id)
	return user, nil
}
