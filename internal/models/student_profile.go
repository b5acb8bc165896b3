package models

import (
	"time"

	"github.com/google/uuid"
)

type StudentProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"uniqueIndex"`
	Name        string
	SchoolName  string
	Email       string `gorm:"index"`
	Phone       string
	Address     string
	DateOfBirth string
	IsComplete  bool `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompletionPercentage reports how many of the optional contact fields are filled.
func (p *StudentProfile) CompletionPercentage() float64 {
	fields := []string{p.Name, p.SchoolName, p.Email, p.Phone, p.Address, p.DateOfBirth}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields)) * 100
}

// RefreshCompletion recomputes IsComplete from the current field values.
// Call before persisting any profile mutation.
func (p *StudentProfile) RefreshCompletion() {
	p.IsComplete = p.CompletionPercentage() == 100
}
