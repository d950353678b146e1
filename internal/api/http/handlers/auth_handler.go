package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/kanban-board/internal/api/dto"
	"github.com/spec-kit/kanban-board/internal/service"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

// AuthHandler issues viewer tokens.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// IssueToken handles POST /auth/token.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, err := h.auth.IssueToken(c.UserContext(), req.Viewer, req.APIKey)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": dto.AuthResponse{Token: token.Value, ExpiresAt: token.ExpiresAt},
	})
}
