package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"caterly/internal/domain/user"
	"caterly/internal/infrastructure/persistence/models"
	"caterly/internal/shared/authorization"
	"caterly/internal/shared/logger"
)

// UserRepository implements the user repository interface on GORM
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := userToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	entity.ID = model.ID
	entity.CreatedAt = model.CreatedAt
	entity.UpdatedAt = model.UpdatedAt

	r.logger.Infow("user created successfully", "id", model.ID, "email", model.Email)
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model), nil
}

// ExistsByEmail checks whether a user with the email already exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check email existence", "error", err)
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return count > 0, nil
}

func userToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           entity.ID,
		FirstName:    entity.FirstName,
		LastName:     entity.LastName,
		Phone:        entity.Phone,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		Role:         entity.Role.String(),
		CompanyName:  entity.CompanyName,
	}
}

func userToEntity(model *models.UserModel) *user.User {
	return &user.User{
		ID:           model.ID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Phone:        model.Phone,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         authorization.UserRole(model.Role),
		CompanyName:  model.CompanyName,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
