package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CurriculumSubject is one subject of the host institution's curriculum.
// Descriptions holds the ordered phrasing variants used for similarity matching.
type CurriculumSubject struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectCode  string    `gorm:"index"`
	Descriptions datatypes.JSONSlice[string]
	Units        int
	IsActive     bool `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
