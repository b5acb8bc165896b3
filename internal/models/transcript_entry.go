package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Credit evaluation dispositions
const (
	EvaluationAccepted    = "ACCEPTED"
	EvaluationDenied      = "DENIED"
	EvaluationVoid        = "VOID"
	EvaluationInvestigate = "INVESTIGATE"
)

// Remarks values written by the grading passes
const (
	RemarksPassed  = "PASSED"
	RemarksFailed  = "FAILED"
	RemarksInvalid = "INVALID GRADE"
)

func ValidEvaluations() []string {
	return []string{EvaluationAccepted, EvaluationDenied, EvaluationVoid, EvaluationInvestigate}
}

func IsValidEvaluation(v string) bool {
	for _, e := range ValidEvaluations() {
		if v == e {
			return true
		}
	}
	return false
}

type TranscriptEntry struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID          string    `gorm:"index;uniqueIndex:idx_account_subject"`
	SubjectCode        string    `gorm:"uniqueIndex:idx_account_subject"`
	SubjectDescription string
	TotalAcademicUnits float64
	FinalGrade         float64
	Remarks            string
	Summary            string
	CreditEvaluation   string `gorm:"index"`
	Notes              string
	MatchDetails       datatypes.JSON
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (e *TranscriptEntry) IsPassing() bool {
	return e.Remarks == RemarksPassed
}
