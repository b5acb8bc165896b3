package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"transcript-evaluation-backend/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Expose DB if needed
func (r *ProfileRepository) DB() *gorm.DB {
	return r.db
}

// GetByUserID fetches one profile, nil when missing.
func (r *ProfileRepository) GetByUserID(userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Exists reports whether a profile exists for the user.
func (r *ProfileRepository) Exists(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.StudentProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// Search lists profiles with optional completion filter and substring search
// across name, email, school name and user id.
func (r *ProfileRepository) Search(isComplete *bool, search string) ([]models.StudentProfile, error) {
	query := r.db.Model(&models.StudentProfile{})

	if isComplete != nil {
		query = query.Where("is_complete = ?", *isComplete)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(school_name) LIKE ? OR LOWER(user_id) LIKE ?",
			like, like, like, like,
		)
	}

	var profiles []models.StudentProfile
	err := query.Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}
