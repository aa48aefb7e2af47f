package postgres

import (
	"context"

	"lectern/internal/domain/entity"
	"lectern/internal/domain/repository"
	"lectern/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// teacherRepository implements the repository.TeacherRepository interface.
type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository is the constructor for teacherRepository.
func NewTeacherRepository(db *gorm.DB) repository.TeacherRepository {
	return &teacherRepository{db: db}
}

// FindByEmail retrieves a single teacher by their email address.
func (repo *teacherRepository) FindByEmail(ctx context.Context, email string) (*entity.Teacher, error) {
	var teacherM model.TeacherModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&teacherM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeacherNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTeacherDomain(&teacherM), nil
}

// FindByUUID retrieves a single teacher by their public UUID.
func (repo *teacherRepository) FindByUUID(ctx context.Context, uuid string) (*entity.Teacher, error) {
	var teacherM model.TeacherModel
	if err := repo.db.WithContext(ctx).
		Where("uuid = ?", uuid).
		First(&teacherM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeacherNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTeacherDomain(&teacherM), nil
}

// Create persists a new teacher.
func (repo *teacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	teacherM := fromTeacherDomain(teacher)

	if err := repo.db.WithContext(ctx).Create(teacherM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUniqueViolation
		}

		return errors.WithStack(err)
	}

	// Update the entity with generated values
	teacher.ID = teacherM.ID
	teacher.CreatedAt = teacherM.CreatedAt
	teacher.UpdatedAt = teacherM.UpdatedAt

	return nil
}

// Count returns the total number of teachers.
func (repo *teacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TeacherModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// --- Mapper Functions ---

// toTeacherDomain converts a GORM TeacherModel to a domain Teacher entity.
func toTeacherDomain(data *model.TeacherModel) *entity.Teacher {
	if data == nil {
		return nil
	}

	return &entity.Teacher{
		ID:             data.ID,
		UUID:           data.UUID,
		Email:          data.Email,
		PasswordDigest: data.PasswordDigest,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromTeacherDomain converts a domain Teacher entity to a GORM TeacherModel.
func fromTeacherDomain(data *entity.Teacher) *model.TeacherModel {
	if data == nil {
		return nil
	}

	return &model.TeacherModel{
		ID:             data.ID,
		UUID:           data.UUID,
		Email:          data.Email,
		PasswordDigest: data.PasswordDigest,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
