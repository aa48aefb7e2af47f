package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lectern/internal/delivery/http/response"
	"lectern/internal/domain/entity"
	"lectern/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session lifecycle handlers.
type SessionHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.AuthUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	SessionUUID           string    `json:"session_uuid"`
	AccessToken           string    `json:"access_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

func toSessionResponse(session *entity.Session) sessionResponse {
	return sessionResponse{
		SessionUUID:           session.UUID,
		AccessToken:           session.AccessToken,
		AccessTokenExpiresAt:  session.AccessTokenExpiresAt,
		RefreshToken:          session.RefreshToken,
		RefreshTokenExpiresAt: session.RefreshTokenExpiresAt,
	}
}

// SignIn handles the credential check and opens a new session.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign in input")
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSessionResponse(output.Session), "Signed in successfully")
}

// Refresh rotates the access token pair of the session named in the path.
// The refresh token is presented as a bearer credential.
func (h *SessionHandler) Refresh(c echo.Context) error {
	output, err := h.uc.Refresh(c.Request().Context(), usecase.RefreshInput{
		SessionUUID:  c.Param("uuid"),
		RefreshToken: bearerToken(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponse(output.Session), "Session refreshed successfully")
}

// SignOut terminates the session named in the path. Like Refresh, it requires
// the session's refresh token as a bearer credential.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context(), usecase.SignOutInput{
		SessionUUID:  c.Param("uuid"),
		RefreshToken: bearerToken(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out successfully")
}

// bearerToken extracts the token from the Authorization header. A missing or
// malformed header yields an empty token, which fails validation downstream.
func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}
