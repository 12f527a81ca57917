package services

import (
	"context"
	"time"

	"github.com/karales/todo_backend/internal/core/domain"
	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/platform/config"
	"github.com/karales/todo_backend/internal/utils"
)

// tokenService issues the stateless bearer tokens. Rotating the signing
// secret invalidates every outstanding token; there is no rollover.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
