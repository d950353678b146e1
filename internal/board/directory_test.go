package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/kanban-board/internal/domain"
)

func TestFindUser(t *testing.T) {
	users := []domain.User{
		{ID: "1", Name: "Ann"},
		{ID: "2", Name: "Bob"},
		{ID: "1", Name: "Duplicate"},
	}

	u, ok := FindUser(users, "1")
	assert.True(t, ok)
	assert.Equal(t, "Ann", u.Name)

	_, ok = FindUser(users, "99")
	assert.False(t, ok)

	_, ok = FindUser(nil, "1")
	assert.False(t, ok)
}
