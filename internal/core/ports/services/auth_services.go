package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/karales/todo_backend/internal/core/domain"
)

// TokenSvcFacade issues and verifies the stateless bearer tokens that scope
// every protected request.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a token whose subject is the user id.
	// Returns the token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the provider-side half of the federated login
// handshake. The core only ever consumes the resulting assertion.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString produces the anti-forgery state for the redirect
	// flow.
	GenerateStateString() (string, error)

	// GetLoginURL returns the Google consent URL for the given state.
	GetLoginURL(state string) string

	// ExchangeCodeForToken exchanges an authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the profile assertion with the access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateIDToken verifies a Google ID token against the configured
	// client id and returns its payload.
	ValidateIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
