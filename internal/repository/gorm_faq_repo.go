package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/supportly-beer/supportly-backend/internal/domain"
)

// GormFaqRepository implements FaqRepository using GORM.
type GormFaqRepository struct {
	db *gorm.DB
}

// NewGormFaqRepository creates a new GORM-based FAQ repository.
func NewGormFaqRepository(db *gorm.DB) *GormFaqRepository {
	return &GormFaqRepository{db: db}
}

// Create creates a new FAQ entry.
func (r *GormFaqRepository) Create(ctx context.Context, entry *domain.FaqModel) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID retrieves an FAQ entry with its creator preloaded.
func (r *GormFaqRepository) GetByID(ctx context.Context, id int64) (*domain.FaqModel, error) {
	var model domain.FaqModel
	result := r.db.WithContext(ctx).Preload("Creator.Role").First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrFaqNotFound
		}
		return nil, result.Error
	}
	return &model, nil
}

// List returns a page of FAQ entries ordered by id.
func (r *GormFaqRepository) List(ctx context.Context, offset, limit int) ([]domain.FaqModel, error) {
	var models []domain.FaqModel
	result := r.db.WithContext(ctx).Preload("Creator.Role").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return models, nil
}
