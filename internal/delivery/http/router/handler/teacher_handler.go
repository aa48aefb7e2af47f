// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"lectern/internal/delivery/http/response"
	"lectern/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TeacherHandler holds dependencies for teacher account handlers.
type TeacherHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewTeacherHandler is the constructor for TeacherHandler, injected by Fx.
func NewTeacherHandler(uc usecase.AuthUsecase, logger *slog.Logger) *TeacherHandler {
	return &TeacherHandler{
		uc:     uc,
		logger: logger,
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles the teacher registration request. The response is the same
// whether the email was fresh or already registered.
func (h *TeacherHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Teacher registered successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
