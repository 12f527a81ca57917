package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karales/todo_backend/internal/apperrors"
	"github.com/karales/todo_backend/internal/core/domain"
	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/dto"
	"github.com/karales/todo_backend/internal/middleware"
	"github.com/karales/todo_backend/internal/platform/config"
)

const (
	oauthStateCookie  = "oauth_state"
	oauthStateMaxAge  = 600 // seconds
	authTokenCookie   = "auth_token"
	frontendErrorPath = "/login?error=auth_failed"
)

// googleOAuthHandler handles the Google federated login flows: the
// browser-redirect flow and the SPA code-exchange flow.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
}

func newGoogleOAuthHandler(
	gs portssvc.GoogleOAuthSvcFacade,
	us portssvc.UserSvcFacade,
	ts portssvc.TokenSvcFacade,
	cfg *config.Config,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: gs,
		userService:        us,
		tokenService:       ts,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes sets up the public Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token, cfg)

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("", h.redirectToGoogle)
		google.GET("/callback", h.callbackGoogle)
		google.POST("/exchange-code", h.exchangeCodeGoogle)
	}
}

// redirectToGoogle godoc
// @Summary Start Google login
// @Description Redirects the browser to the Google consent screen with an
// anti-forgery state value stored in a short-lived cookie.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [get]
func (h *googleOAuthHandler) redirectToGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString()
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetLoginURL(state))
}

// callbackGoogle handles the browser redirect back from Google. Every failure
// redirects to the frontend login page with a generic error marker; provider
// detail stays in the logs.
//
// @Summary Google OAuth callback
// @Tags oauth
// @Success 307
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	failureURL := h.cfg.FrontendBaseURL + frontendErrorPath

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch or missing")
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}
	// State is single use
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		logger.Warn("OAuth callback missing authorization code", slog.String("provider_error", c.Query("error")))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	oauthToken, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(ctx, oauthToken)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, *info)
	if err != nil {
		logger.Error("Failed to reconcile Google identity", slog.String("error", err.Error()))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.Redirect(http.StatusTemporaryRedirect, failureURL)
		return
	}

	logger.Info("Google login completed", slog.String("user_id", user.UserID))
	maxAge := int(h.cfg.JWTExpiryDuration.Seconds())
	c.SetCookie(authTokenCookie, token, maxAge, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL+"/auth/callback?token="+token)
}

// exchangeCodeGoogle handles the SPA flow: the frontend performed the
// redirect dance itself and posts the authorization code here.
//
// @Summary Exchange authorization code for an access token
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired authorization code"
// @Failure 401 {object} ErrorResponse "ID token failed verification"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewBadRequestError("Authorization code is required")
		c.JSON(appErr.Code, appErr)
		return
	}

	oauthToken, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to communicate with Google")
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauthToken.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token missing from Google token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleOAuthService.ValidateIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token failed verification", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token")
		c.JSON(appErr.Code, appErr)
		return
	}

	email, _ := payload.Claims["email"].(string)
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)

	info := domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		VerifiedEmail: verified,
		GivenName:     givenName,
		FamilyName:    familyName,
		Picture:       picture,
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, info)
	if err != nil {
		respondError(c, logger, err, "Failed to process Google login")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		appErr := apperrors.NewInternalServerError("Failed to generate access token")
		c.JSON(appErr.Code, appErr)
		return
	}

	logger.Info("Google code exchange completed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}
