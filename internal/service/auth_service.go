package service

import (
	"context"
	"strings"

	"github.com/spec-kit/kanban-board/internal/auth"
	"github.com/spec-kit/kanban-board/internal/config"
	"github.com/spec-kit/kanban-board/internal/domain"
	apperrors "github.com/spec-kit/kanban-board/pkg/util/errorutil"
)

// AuthService issues viewer tokens in exchange for the shared API key.
type AuthService struct {
	tokenMgr   *auth.TokenManager
	apiKeyHash string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		apiKeyHash: cfg.APIKeyHash,
	}
}

// TokenManager exposes the underlying token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// IssueToken returns a bearer token for viewerID when apiKey matches the configured hash.
func (s *AuthService) IssueToken(_ context.Context, viewerID, apiKey string) (domain.Token, error) {
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" || apiKey == "" {
		return domain.Token{}, apperrors.NewValidationError("viewer and api_key required", nil)
	}
	if s.apiKeyHash == "" {
		return domain.Token{}, apperrors.NewUnauthorized("token issuance disabled")
	}
	if err := auth.CompareAPIKey(s.apiKeyHash, apiKey); err != nil {
		return domain.Token{}, apperrors.NewUnauthorized("invalid api key")
	}
	token, err := s.tokenMgr.GenerateToken(viewerID)
	if err != nil {
		return domain.Token{}, apperrors.NewInternalError(err)
	}
	return token, nil
}
