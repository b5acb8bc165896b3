package repository

import (
	"gorm.io/gorm"

	"transcript-evaluation-backend/internal/models"
)

type TransfereeRepository struct {
	db *gorm.DB
}

func NewTransfereeRepository(db *gorm.DB) *TransfereeRepository {
	return &TransfereeRepository{db: db}
}

// FindByAccount returns the raw intake rows for one student account.
func (r *TransfereeRepository) FindByAccount(accountID string) ([]models.TransfereeEntry, error) {
	var entries []models.TransfereeEntry
	err := r.db.Where("account_id = ?", accountID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}
