package repository

import (
	"gorm.io/gorm"

	"transcript-evaluation-backend/internal/models"
)

type CurriculumRepository struct {
	db *gorm.DB
}

func NewCurriculumRepository(db *gorm.DB) *CurriculumRepository {
	return &CurriculumRepository{db: db}
}

// FindActive returns the active curriculum catalog in insertion order.
// Matching depends on stable iteration order (first-seen wins on ties).
func (r *CurriculumRepository) FindActive() ([]models.CurriculumSubject, error) {
	var subjects []models.CurriculumSubject
	err := r.db.Where("is_active = ?", true).Order("created_at ASC").Find(&subjects).Error
	return subjects, err
}
