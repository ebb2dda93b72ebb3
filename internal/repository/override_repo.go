package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/models"
)

// OverrideRepository stores manual recommendation overrides.
type OverrideRepository interface {
	Create(ctx context.Context, override *models.Override) error
	ListByUser(ctx context.Context, userID string) ([]models.Override, error)
}

type overrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository constructs an override repository.
func NewOverrideRepository(db *gorm.DB) OverrideRepository {
	return &overrideRepository{db: db}
}

func (r *overrideRepository) Create(ctx context.Context, override *models.Override) error {
	return r.db.WithContext(ctx).Create(override).Error
}

func (r *overrideRepository) ListByUser(ctx context.Context, userID string) ([]models.Override, error) {
	var overrides []models.Override
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}
