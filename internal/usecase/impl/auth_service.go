// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"lectern/config"
	"lectern/internal/domain/entity"
	domainerrors "lectern/internal/domain/errors"
	"lectern/internal/domain/repository"
	"lectern/internal/domain/service"
	"lectern/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	teacherRepo repository.TeacherRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokenGen    service.TokenGenerator
	reporter    service.FaultReporter
	logger      *slog.Logger

	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	teacherRepo repository.TeacherRepository,
	sessionRepo repository.SessionRepository,
	hasher service.PasswordHasher,
	tokenGen service.TokenGenerator,
	reporter service.FaultReporter,
	logger *slog.Logger,
	authCfg *config.AuthConfig,
) usecase.AuthUsecase {
	return &authService{
		teacherRepo:     teacherRepo,
		sessionRepo:     sessionRepo,
		hasher:          hasher,
		tokenGen:        tokenGen,
		reporter:        reporter,
		logger:          logger,
		accessTokenTTL:  authCfg.AccessTokenTTL,
		refreshTokenTTL: authCfg.RefreshTokenTTL,
	}
}

// SignUp registers a new teacher account.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) error {
	if verrs := validateRegistration(input.Email, input.Password); len(verrs) > 0 {
		return verrs
	}

	// The digest is computed before touching storage so the taken-email path
	// costs the same as the fresh-email path.
	digest, err := srv.hasher.Digest(input.Password)
	if err != nil {
		return srv.fault(ctx, err, "failed to hash password during sign up")
	}

	teacher := &entity.Teacher{
		UUID:           uuid.New().String(),
		Email:          input.Email,
		PasswordDigest: digest,
	}

	if err := srv.teacherRepo.Create(ctx, teacher); err != nil {
		// An already registered email is reported as success so the endpoint
		// cannot be used to probe which emails exist.
		if errors.Is(err, repository.ErrUniqueViolation) {
			srv.logger.Debug("Sign up absorbed duplicate email")

			return nil
		}

		return srv.fault(ctx, err, "failed to create teacher")
	}

	srv.logger.Debug("Teacher registered", "teacherUUID", teacher.UUID)

	return nil
}

// SignIn verifies credentials and opens a new session.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	if verrs := validateSignIn(input.Email, input.Password); len(verrs) > 0 {
		return nil, verrs
	}

	teacher, err := srv.teacherRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return nil, domainerrors.ValidationErrors{domainerrors.ErrTeacherNotFound}
		}

		return nil, srv.fault(ctx, err, "failed to find teacher by email")
	}

	match, err := srv.hasher.Verify(input.Password, teacher.PasswordDigest)
	if err != nil {
		return nil, srv.fault(ctx, err, "failed to verify password")
	}
	if !match {
		return nil, domainerrors.ValidationErrors{domainerrors.ErrPasswordMismatch}
	}

	session, err := srv.newSession(teacher)
	if err != nil {
		return nil, srv.fault(ctx, err, "failed to generate session tokens")
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, srv.fault(ctx, err, "failed to create session")
	}

	srv.logger.Debug("Teacher signed in", "sessionUUID", session.UUID)

	return &usecase.SignInOutput{Session: session}, nil
}

// Refresh rotates the session's access token pair. The refresh token itself
// keeps its original value and expiry.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if verrs := validateSessionRequest(input.SessionUUID, input.RefreshToken); len(verrs) > 0 {
		return nil, verrs
	}

	session, err := srv.sessionRepo.FindByUUID(ctx, input.SessionUUID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, srv.fault(ctx, err, "failed to find session by uuid")
	}

	if subtle.ConstantTimeCompare([]byte(session.RefreshToken), []byte(input.RefreshToken)) != 1 {
		return nil, domainerrors.ErrUnauthorized
	}
	if time.Now().After(session.RefreshTokenExpiresAt) {
		return nil, domainerrors.ErrUnauthorized
	}

	accessToken, err := srv.tokenGen.Generate()
	if err != nil {
		return nil, srv.fault(ctx, err, "failed to generate access token")
	}

	session.AccessToken = accessToken
	session.AccessTokenExpiresAt = time.Now().Add(srv.accessTokenTTL)

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		// The session vanished between lookup and write.
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, srv.fault(ctx, err, "failed to save session")
	}

	srv.logger.Debug("Session refreshed", "sessionUUID", session.UUID)

	return &usecase.RefreshOutput{Session: session}, nil
}

// SignOut terminates the session. A second sign-out of the same session
// reports the session as gone, not as an authorization failure.
func (srv *authService) SignOut(ctx context.Context, input usecase.SignOutInput) error {
	if verrs := validateSessionRequest(input.SessionUUID, input.RefreshToken); len(verrs) > 0 {
		return verrs
	}

	session, err := srv.sessionRepo.FindByUUID(ctx, input.SessionUUID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}

		return srv.fault(ctx, err, "failed to find session by uuid")
	}

	if subtle.ConstantTimeCompare([]byte(session.RefreshToken), []byte(input.RefreshToken)) != 1 {
		return domainerrors.ErrUnauthorized
	}

	if err := srv.sessionRepo.Destroy(ctx, session); err != nil {
		// The lookup just confirmed the row exists; losing it mid-delete is
		// an invariant violation, not a caller error.
		return srv.fault(ctx, err, "failed to destroy session")
	}

	srv.logger.Debug("Teacher signed out", "sessionUUID", session.UUID)

	return nil
}

// newSession builds a fresh session for the teacher with both token pairs.
func (srv *authService) newSession(teacher *entity.Teacher) (*entity.Session, error) {
	accessToken, err := srv.tokenGen.Generate()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	refreshToken, err := srv.tokenGen.Generate()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := time.Now()

	return &entity.Session{
		UUID:                  uuid.New().String(),
		OwnerType:             entity.OwnerTypeTeacher,
		OwnerUUID:             teacher.UUID,
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  now.Add(srv.accessTokenTTL),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: now.Add(srv.refreshTokenTTL),
	}, nil
}

// fault reports the underlying error and swaps it for the opaque one that
// callers are allowed to see.
func (srv *authService) fault(ctx context.Context, err error, msg string) error {
	srv.reporter.Report(ctx, errors.Wrap(err, msg))

	return domainerrors.ErrUnexpected
}
