package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lectern/internal/delivery/http/middleware"
	"lectern/internal/domain/entity"
	domainerrors "lectern/internal/domain/errors"
	"lectern/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns canned results per operation.
type stubAuthUsecase struct {
	signUpErr  error
	signInOut  *usecase.SignInOutput
	signInErr  error
	refreshOut *usecase.RefreshOutput
	refreshErr error
	signOutErr error

	lastRefreshInput usecase.RefreshInput
	lastSignOutInput usecase.SignOutInput
}

func (s *stubAuthUsecase) SignUp(_ context.Context, _ usecase.SignUpInput) error {
	return s.signUpErr
}

func (s *stubAuthUsecase) SignIn(_ context.Context, _ usecase.SignInInput) (*usecase.SignInOutput, error) {
	return s.signInOut, s.signInErr
}

func (s *stubAuthUsecase) Refresh(_ context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	s.lastRefreshInput = input

	return s.refreshOut, s.refreshErr
}

func (s *stubAuthUsecase) SignOut(_ context.Context, input usecase.SignOutInput) error {
	s.lastSignOutInput = input

	return s.signOutErr
}

func newTestServer(stub *stubAuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	teacherHandler := NewTeacherHandler(stub, logger)
	sessionHandler := NewSessionHandler(stub, logger)

	e.POST("/teachers", teacherHandler.SignUp)
	e.POST("/teachers/sign_in", sessionHandler.SignIn)
	e.PATCH("/teachers/sign_in/:uuid/refresh", sessionHandler.Refresh)
	e.DELETE("/teachers/sign_in/:uuid", sessionHandler.SignOut)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code   string   `json:"code"`
		Errors []string `json:"errors"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func testSession() *entity.Session {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	return &entity.Session{
		ID:                    1,
		UUID:                  "3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21",
		OwnerType:             entity.OwnerTypeTeacher,
		OwnerUUID:             "7d2cb9d2-6a05-4d86-b6b9-0b0f2c3ffb77",
		AccessToken:           "access-token",
		AccessTokenExpiresAt:  now.Add(24 * time.Hour),
		RefreshToken:          "refresh-token",
		RefreshTokenExpiresAt: now.Add(28 * 24 * time.Hour),
	}
}

func TestSignUp_Created(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{})

	rec := doJSON(e, http.MethodPost, "/teachers",
		`{"email":"ms.frizzle@walkerville.edu","password":"password1"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
}

func TestSignUp_ValidationErrorsCarryAllMessages(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{
		signUpErr: domainerrors.ValidationErrors{
			domainerrors.ErrEmailBlank,
			domainerrors.ErrPasswordTooShort,
		},
	})

	rec := doJSON(e, http.MethodPost, "/teachers", `{"email":"","password":"short"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_PARAMS", env.Error.Code)
	assert.Equal(t, []string{
		"Email can't be blank",
		"Password is too short (minimum is 8 characters)",
	}, env.Error.Errors)
}

func TestSignIn_ReturnsSessionPayload(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{
		signInOut: &usecase.SignInOutput{Session: testSession()},
	})

	rec := doJSON(e, http.MethodPost, "/teachers/sign_in",
		`{"email":"ms.frizzle@walkerville.edu","password":"password1"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)

	var payload sessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, "3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21", payload.SessionUUID)
	assert.Equal(t, "access-token", payload.AccessToken)
	assert.Equal(t, "refresh-token", payload.RefreshToken)
	assert.False(t, payload.AccessTokenExpiresAt.IsZero())
	assert.False(t, payload.RefreshTokenExpiresAt.IsZero())
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{
		signInErr: domainerrors.ValidationErrors{domainerrors.ErrPasswordMismatch},
	})

	rec := doJSON(e, http.MethodPost, "/teachers/sign_in",
		`{"email":"ms.frizzle@walkerville.edu","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, []string{"Invalid email/password combination"}, env.Error.Errors)
}

func TestRefresh_PassesPathUUIDAndBearerToken(t *testing.T) {
	stub := &stubAuthUsecase{
		refreshOut: &usecase.RefreshOutput{Session: testSession()},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPatch,
		"/teachers/sign_in/3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21/refresh", "",
		map[string]string{echo.HeaderAuthorization: "Bearer refresh-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21", stub.lastRefreshInput.SessionUUID)
	assert.Equal(t, "refresh-token", stub.lastRefreshInput.RefreshToken)
}

func TestRefresh_MissingAuthorizationHeaderYieldsBlankToken(t *testing.T) {
	stub := &stubAuthUsecase{
		refreshErr: domainerrors.ValidationErrors{domainerrors.ErrRefreshTokenBlank},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPatch,
		"/teachers/sign_in/3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21/refresh", "", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, stub.lastRefreshInput.RefreshToken)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, []string{"Refresh token can't be blank"}, env.Error.Errors)
}

func TestRefresh_WrongToken(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{refreshErr: domainerrors.ErrUnauthorized})

	rec := doJSON(e, http.MethodPatch,
		"/teachers/sign_in/3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21/refresh", "",
		map[string]string{echo.HeaderAuthorization: "Bearer not-it"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestSignOut_UnknownSession(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{signOutErr: domainerrors.ErrSessionNotFound})

	rec := doJSON(e, http.MethodDelete,
		"/teachers/sign_in/3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SESSION_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Session not found", env.Message)
}

func TestSignOut_Success(t *testing.T) {
	stub := &stubAuthUsecase{}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodDelete,
		"/teachers/sign_in/3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21", "",
		map[string]string{echo.HeaderAuthorization: "Bearer refresh-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3e0c9a08-8f7f-4f8e-9f35-54bd9f6b4f21", stub.lastSignOutInput.SessionUUID)
	assert.Equal(t, "refresh-token", stub.lastSignOutInput.RefreshToken)
}

func TestUnexpectedErrorIsOpaque(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{signUpErr: domainerrors.ErrUnexpected})

	rec := doJSON(e, http.MethodPost, "/teachers",
		`{"email":"ms.frizzle@walkerville.edu","password":"password1"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNEXPECTED_ERROR", env.Error.Code)
	assert.Equal(t, "Unexpected error", env.Message)
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(&stubAuthUsecase{})
	e.GET("/health", HealthCheck)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
}
