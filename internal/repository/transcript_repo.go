package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"transcript-evaluation-backend/internal/models"
)

type TranscriptRepository struct {
	db *gorm.DB
}

func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Expose DB if needed
func (r *TranscriptRepository) DB() *gorm.DB {
	return r.db
}

// FindByAccount returns all transcript entries for one student account.
func (r *TranscriptRepository) FindByAccount(accountID string) ([]models.TranscriptEntry, error) {
	var entries []models.TranscriptEntry
	err := r.db.Where("account_id = ?", accountID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

// GetByID fetches a single entry, nil when missing.
func (r *TranscriptRepository) GetByID(id uuid.UUID) (*models.TranscriptEntry, error) {
	var entry models.TranscriptEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
