package models

import (
	"time"

	"github.com/google/uuid"
)

// TransfereeEntry is a raw TOR row from the transfer-intake upload.
// Rows are copied into transcript_entries once per (account, subject).
type TransfereeEntry struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID          string    `gorm:"index"`
	SubjectCode        string
	SubjectDescription string
	TotalAcademicUnits float64
	FinalGrade         float64
	Remarks            string
	CreatedAt          time.Time
}
