package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/supportly-beer/supportly-backend/internal/domain"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user.
func (r *GormUserRepository) Create(ctx context.Context, user *domain.UserModel) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateError(err) {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a user by ID with its role preloaded.
func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*domain.UserModel, error) {
	var model domain.UserModel
	result := r.db.WithContext(ctx).Preload("Role").First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// GetByEmail retrieves a user by email with its role preloaded.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserModel, error) {
	var model domain.UserModel
	result := r.db.WithContext(ctx).Preload("Role").First(&model, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// Update persists all mutable fields of the user.
func (r *GormUserRepository) Update(ctx context.Context, user *domain.UserModel) error {
	result := r.db.WithContext(ctx).Model(&domain.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name":          user.FirstName,
			"last_name":           user.LastName,
			"password":            user.Password,
			"profile_picture_url": user.ProfilePictureURL,
			"twofa_secret":        user.TwofaSecret,
			"twofa_enabled":       user.TwofaEnabled,
			"email_verified":      user.EmailVerified,
			"role_id":             user.RoleID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// List returns a page of users ordered by id.
func (r *GormUserRepository) List(ctx context.Context, offset, limit int) ([]domain.UserModel, error) {
	var models []domain.UserModel
	result := r.db.WithContext(ctx).Preload("Role").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return models, nil
}

// Count returns the total number of users.
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&domain.UserModel{}).Count(&count)
	return count, result.Error
}

// isDuplicateError detects unique-constraint violations across the
// supported database drivers.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GORM-based role repository.
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// GetByName retrieves a role by its name.
func (r *GormRoleRepository) GetByName(ctx context.Context, name string) (*domain.RoleModel, error) {
	var model domain.RoleModel
	result := r.db.WithContext(ctx).First(&model, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// CreateAll inserts the given roles.
func (r *GormRoleRepository) CreateAll(ctx context.Context, roles []domain.RoleModel) error {
	return r.db.WithContext(ctx).Create(&roles).Error
}

// Count returns the total number of roles.
func (r *GormRoleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&domain.RoleModel{}).Count(&count)
	return count, result.Error
}
