package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/kanban-board/internal/api/dto"
	"github.com/spec-kit/kanban-board/internal/service"
)

// SnapshotHandler exposes the raw tickets and users the board is built from.
type SnapshotHandler struct {
	boards *service.BoardService
}

// NewSnapshotHandler constructs handler.
func NewSnapshotHandler(boards *service.BoardService) *SnapshotHandler {
	return &SnapshotHandler{boards: boards}
}

// ListTickets GET /tickets.
func (h *SnapshotHandler) ListTickets(c *fiber.Ctx) error {
	snapshot, err := h.boards.Snapshot(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponses(snapshot.Tickets)})
}

// ListUsers GET /users.
func (h *SnapshotHandler) ListUsers(c *fiber.Ctx) error {
	snapshot, err := h.boards.Snapshot(c.UserContext())
	if err != nil {
		return err
	}
	users := make([]dto.UserResponse, 0, len(snapshot.Users))
	for _, u := range snapshot.Users {
		users = append(users, userResponse(u))
	}
	return c.JSON(fiber.Map{"data": users})
}

// Refresh POST /snapshot/refresh.
func (h *SnapshotHandler) Refresh(c *fiber.Ctx) error {
	if err := h.boards.Refresh(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
