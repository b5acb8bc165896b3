package profile

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"transcript-evaluation-backend/internal/apperr"
	"transcript-evaluation-backend/internal/models"
	"transcript-evaluation-backend/internal/repository"
)

func newTestService(t *testing.T) (*ProfileService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.StudentProfile{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewProfileService(repository.NewProfileRepository(db)), db
}

func str(s string) *string { return &s }

func TestCreateProfile(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProfile("U100", Input{
		Name:       str("Alex Reyes"),
		SchoolName: str("Previous State University"),
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if created.UserID != "U100" || created.Name != "Alex Reyes" {
		t.Errorf("got %+v", created)
	}
	if created.IsComplete {
		t.Error("partial profile must not be complete")
	}
}

func TestCreateProfileRequiresUserID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProfile("", Input{})
	var validationErr *apperr.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateProfileDuplicate(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateProfile("U100", Input{}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CreateProfile("U100", Input{})
	var duplicateErr *apperr.DuplicateError
	if !errors.As(err, &duplicateErr) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateProfile("U404", Input{Name: str("Nobody")})
	var notFoundErr *apperr.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSaveProfileCreatesThenMerges(t *testing.T) {
	svc, db := newTestService(t)

	first, err := svc.SaveProfile("U100", Input{Name: str("Alex Reyes")})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Merge only the provided fields; the rest keep their values.
	second, err := svc.SaveProfile("U100", Input{Email: str("alex@example.com")})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Error("save must update the existing profile, not create a new one")
	}
	if second.Name != "Alex Reyes" {
		t.Errorf("unprovided field was clobbered: %q", second.Name)
	}
	if second.Email != "alex@example.com" {
		t.Errorf("provided field not applied: %q", second.Email)
	}

	var count int64
	db.Model(&models.StudentProfile{}).Count(&count)
	if count != 1 {
		t.Errorf("profile count = %d, want 1", count)
	}
}

func TestSaveProfileClearsEmptyAndNullValues(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.SaveProfile("U100", Input{Phone: str("555-0100")}); err != nil {
		t.Fatal(err)
	}

	saved, err := svc.SaveProfile("U100", Input{Phone: str("null")})
	if err != nil {
		t.Fatal(err)
	}
	if saved.Phone != "" {
		t.Errorf("\"null\" must clear the field, got %q", saved.Phone)
	}
}

func TestProfileCompletion(t *testing.T) {
	svc, _ := newTestService(t)

	full, err := svc.CreateProfile("U100", Input{
		Name:        str("Alex Reyes"),
		SchoolName:  str("Previous State University"),
		Email:       str("alex@example.com"),
		Phone:       str("555-0100"),
		Address:     str("12 Mabini St"),
		DateOfBirth: str("2001-04-17"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !full.IsComplete || full.CompletionPercentage() != 100 {
		t.Errorf("fully-filled profile: complete=%v pct=%v", full.IsComplete, full.CompletionPercentage())
	}
}

func TestDeleteProfile(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateProfile("U100", Input{}); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteProfile("U100"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}

	exists, err := svc.CheckProfileExists("U100")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("profile still exists after delete")
	}

	err = svc.DeleteProfile("U100")
	var notFoundErr *apperr.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestGetAllProfilesFilters(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateProfile("U100", Input{
		Name:        str("Alex Reyes"),
		SchoolName:  str("Previous State University"),
		Email:       str("alex@example.com"),
		Phone:       str("555-0100"),
		Address:     str("12 Mabini St"),
		DateOfBirth: str("2001-04-17"),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateProfile("U200", Input{Name: str("Bea Santos")}); err != nil {
		t.Fatal(err)
	}

	complete := true
	profiles, err := svc.GetAllProfiles(&complete, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 || profiles[0].UserID != "U100" {
		t.Errorf("complete filter returned %+v", profiles)
	}

	profiles, err = svc.GetAllProfiles(nil, "santos")
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 || profiles[0].UserID != "U200" {
		t.Errorf("search returned %+v", profiles)
	}
}

func TestGetProfileStatistics(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateProfile("U100", Input{
		Name:        str("Alex Reyes"),
		SchoolName:  str("Previous State University"),
		Email:       str("alex@example.com"),
		Phone:       str("555-0100"),
		Address:     str("12 Mabini St"),
		DateOfBirth: str("2001-04-17"),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateProfile("U200", Input{Name: str("Bea Santos"), SchoolName: str("City College"), Email: str("bea@example.com")}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.GetProfileStatistics()
	if err != nil {
		t.Fatalf("GetProfileStatistics: %v", err)
	}
	if stats.Total != 2 || stats.Complete != 1 || stats.Incomplete != 1 {
		t.Errorf("counts wrong: %+v", stats)
	}
	if stats.CompletionRate != 50 {
		t.Errorf("completion rate = %v, want 50", stats.CompletionRate)
	}
	if stats.AverageCompletion != 75 {
		t.Errorf("average completion = %v, want 75", stats.AverageCompletion)
	}
}

func TestGetProfileStatisticsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.GetProfileStatistics()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 0 || stats.CompletionRate != 0 || stats.AverageCompletion != 0 {
		t.Errorf("empty stats: %+v", stats)
	}
}
