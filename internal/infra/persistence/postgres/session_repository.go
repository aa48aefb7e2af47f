package postgres

import (
	"context"

	"lectern/internal/domain/entity"
	"lectern/internal/domain/repository"
	"lectern/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// FindByUUID retrieves a single teacher-owned session by its public UUID.
func (repo *sessionRepository) FindByUUID(ctx context.Context, uuid string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).
		Where("uuid = ? AND owner_type = ?", uuid, entity.OwnerTypeTeacher).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSessionDomain(&sessionM), nil
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.WithStack(err)
	}

	// Update the entity with generated values
	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// Save writes the session's mutable fields back to storage. Only the access
// token pair rotates after creation, so the update targets those columns.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"access_token":            session.AccessToken,
			"access_token_expires_at": session.AccessTokenExpiresAt,
		})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// The row was deleted after the session was loaded.
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// Destroy deletes the session row.
func (repo *sessionRepository) Destroy(ctx context.Context, session *entity.Session) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", session.ID).
		Delete(&model.SessionModel{})

	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the session was not found.
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// Count returns the total number of sessions.
func (repo *sessionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:                    data.ID,
		UUID:                  data.UUID,
		OwnerType:             data.OwnerType,
		OwnerUUID:             data.OwnerUUID,
		AccessToken:           data.AccessToken,
		AccessTokenExpiresAt:  data.AccessTokenExpiresAt,
		RefreshToken:          data.RefreshToken,
		RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:                    data.ID,
		UUID:                  data.UUID,
		OwnerType:             data.OwnerType,
		OwnerUUID:             data.OwnerUUID,
		AccessToken:           data.AccessToken,
		AccessTokenExpiresAt:  data.AccessTokenExpiresAt,
		RefreshToken:          data.RefreshToken,
		RefreshTokenExpiresAt: data.RefreshTokenExpiresAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
