package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/counselor-go-api/internal/models"
)

// JournalRepository stores immutable journal entries per student.
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)
}

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository constructs a journal repository.
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
