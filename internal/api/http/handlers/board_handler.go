package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/kanban-board/internal/api/dto"
	"github.com/spec-kit/kanban-board/internal/auth"
	"github.com/spec-kit/kanban-board/internal/board"
	"github.com/spec-kit/kanban-board/internal/domain"
	"github.com/spec-kit/kanban-board/internal/service"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

// BoardHandler serves computed boards and viewer display controls.
type BoardHandler struct {
	boards      *service.BoardService
	preferences *service.PreferenceService
}

// NewBoardHandler constructs handler.
func NewBoardHandler(boards *service.BoardService, preferences *service.PreferenceService) *BoardHandler {
	return &BoardHandler{boards: boards, preferences: preferences}
}

// GetBoard GET /board.
func (h *BoardHandler) GetBoard(c *fiber.Ctx) error {
	var viewer *domain.Viewer
	if principal, ok := auth.PrincipalFromContext(c); ok {
		viewer = &principal.Viewer
	}

	b, err := h.boards.Board(c.UserContext(), viewer, service.BoardQuery{
		Grouping: c.Query("grouping"),
		Ordering: c.Query("ordering"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": boardResponse(b)})
}

// GetPreferences GET /board/preferences.
func (h *BoardHandler) GetPreferences(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("viewer required")
	}
	prefs := h.preferences.Get(c.UserContext(), principal.Viewer.ID)
	return c.JSON(fiber.Map{"data": dto.PreferencesResponse(prefs)})
}

// PutPreferences PUT /board/preferences.
func (h *BoardHandler) PutPreferences(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("viewer required")
	}
	var req dto.PreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	prefs, err := h.preferences.Put(c.UserContext(), principal.Viewer.ID, domain.Preferences(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PreferencesResponse(prefs)})
}

func boardResponse(b board.Board) dto.BoardResponse {
	columns := make([]dto.ColumnResponse, 0, len(b.Columns))
	for _, col := range b.Columns {
		resp := dto.ColumnResponse{
			Key:         col.Key,
			TicketCount: col.Count,
			Tickets:     ticketResponses(col.Tickets),
		}
		if b.Grouping != board.GroupByUser || col.User != nil {
			label := col.Label
			resp.DisplayLabel = &label
		}
		if col.User != nil {
			u := userResponse(*col.User)
			resp.User = &u
		}
		columns = append(columns, resp)
	}
	return dto.BoardResponse{
		Grouping:    string(b.Grouping),
		Ordering:    string(b.Ordering),
		TicketCount: b.TicketCount(),
		Columns:     columns,
	}
}

func ticketResponses(tickets []domain.Ticket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		tags := t.Tag
		if tags == nil {
			tags = []string{}
		}
		out = append(out, dto.TicketResponse{
			ID:            t.ID,
			Title:         t.Title,
			Tag:           tags,
			Status:        string(t.Status),
			Priority:      int(t.Priority),
			PriorityLabel: board.PriorityLabel(t.Priority),
			UserID:        t.UserID,
		})
	}
	return out
}

func userResponse(u domain.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Img: u.Img}
}
