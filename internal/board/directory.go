package board

import "github.com/spec-kit/kanban-board/internal/domain"

// FindUser returns the first user with the given id.
func FindUser(users []domain.User, id domain.ID) (domain.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}
