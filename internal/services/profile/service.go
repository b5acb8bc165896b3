package profile

import (
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"transcript-evaluation-backend/internal/apperr"
	"transcript-evaluation-backend/internal/models"
	"transcript-evaluation-backend/internal/repository"
)

// ProfileService handles CRUD for transfer-student profiles.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	db          *gorm.DB
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		db:          profileRepo.DB(),
	}
}

// Input carries the optional profile fields of a create/update/save request.
// A nil pointer means "not provided"; an empty or "null" value clears the field.
// Fields are enumerated on purpose: merges assign each one explicitly, nothing
// is copied by name.
type Input struct {
	Name        *string `json:"name"`
	SchoolName  *string `json:"school_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "null" {
		return ""
	}
	return v
}

func applyInput(p *models.StudentProfile, in Input) {
	if in.Name != nil {
		p.Name = cleanValue(*in.Name)
	}
	if in.SchoolName != nil {
		p.SchoolName = cleanValue(*in.SchoolName)
	}
	if in.Email != nil {
		p.Email = cleanValue(*in.Email)
	}
	if in.Phone != nil {
		p.Phone = cleanValue(*in.Phone)
	}
	if in.Address != nil {
		p.Address = cleanValue(*in.Address)
	}
	if in.DateOfBirth != nil {
		p.DateOfBirth = cleanValue(*in.DateOfBirth)
	}
}

// CreateProfile creates a new profile; create-only, an existing user_id is a
// DuplicateError.
func (s *ProfileService) CreateProfile(userID string, in Input) (*models.StudentProfile, error) {
	if userID == "" {
		return nil, apperr.Validation("user ID is required")
	}

	exists, err := s.profileRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Duplicate("profile", userID)
	}

	profile := &models.StudentProfile{
		ID:     uuid.New(),
		UserID: userID,
	}
	applyInput(profile, in)
	profile.RefreshCompletion()

	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}

	log.Printf("Profile created for user: %s", userID)
	return profile, nil
}

// UpdateProfile updates provided fields on an existing profile.
func (s *ProfileService) UpdateProfile(userID string, in Input) (*models.StudentProfile, error) {
	if userID == "" {
		return nil, apperr.Validation("user ID is required")
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("profile", userID)
	}

	applyInput(profile, in)
	profile.RefreshCompletion()

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}

	log.Printf("Profile updated for user: %s", userID)
	return profile, nil
}

// SaveProfile creates the profile if absent, otherwise merges the provided
// fields into the existing one.
func (s *ProfileService) SaveProfile(userID string, in Input) (*models.StudentProfile, error) {
	if userID == "" {
		return nil, apperr.Validation("user ID is required")
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &models.StudentProfile{
			ID:     uuid.New(),
			UserID: userID,
		}
		applyInput(profile, in)
		profile.RefreshCompletion()
		if err := s.db.Create(profile).Error; err != nil {
			return nil, err
		}
		log.Printf("Profile created for user: %s", userID)
		return profile, nil
	}

	applyInput(profile, in)
	profile.RefreshCompletion()
	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}

	log.Printf("Profile updated for user: %s", userID)
	return profile, nil
}

// GetProfile fetches one profile or NotFoundError.
func (s *ProfileService) GetProfile(userID string) (*models.StudentProfile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("profile", userID)
	}
	return profile, nil
}

// GetAllProfiles lists profiles with optional completion filter and search.
func (s *ProfileService) GetAllProfiles(isComplete *bool, search string) ([]models.StudentProfile, error) {
	return s.profileRepo.Search(isComplete, search)
}

// DeleteProfile removes one profile or NotFoundError.
func (s *ProfileService) DeleteProfile(userID string) error {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperr.NotFound("profile", userID)
	}

	if err := s.db.Delete(profile).Error; err != nil {
		return err
	}

	log.Printf("Profile deleted for user: %s", userID)
	return nil
}

// CheckProfileExists reports whether a profile exists.
func (s *ProfileService) CheckProfileExists(userID string) (bool, error) {
	return s.profileRepo.Exists(userID)
}

// GetIncompleteProfiles lists profiles still missing fields.
func (s *ProfileService) GetIncompleteProfiles() ([]models.StudentProfile, error) {
	incomplete := false
	return s.profileRepo.Search(&incomplete, "")
}

// Statistics summarizes profile completion across all students.
type Statistics struct {
	Total             int64   `json:"total"`
	Complete          int64   `json:"complete"`
	Incomplete        int64   `json:"incomplete"`
	CompletionRate    float64 `json:"completion_rate"`
	AverageCompletion float64 `json:"average_completion"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *ProfileService) GetProfileStatistics() (Statistics, error) {
	var stats Statistics

	if err := s.db.Model(&models.StudentProfile{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.StudentProfile{}).Where("is_complete = ?", true).Count(&stats.Complete).Error; err != nil {
		return stats, err
	}
	stats.Incomplete = stats.Total - stats.Complete

	if stats.Total == 0 {
		return stats, nil
	}

	profiles, err := s.profileRepo.Search(nil, "")
	if err != nil {
		return stats, err
	}
	sum := 0.0
	for i := range profiles {
		sum += profiles[i].CompletionPercentage()
	}

	stats.CompletionRate = round2(float64(stats.Complete) / float64(stats.Total) * 100)
	stats.AverageCompletion = round2(sum / float64(stats.Total))
	return stats, nil
}
