package evaluation

import (
	"encoding/json"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"transcript-evaluation-backend/internal/apperr"
	"transcript-evaluation-backend/internal/models"
	"transcript-evaluation-backend/internal/repository"
	"transcript-evaluation-backend/internal/services/grading"
	"transcript-evaluation-backend/internal/services/matching"
)

// EvaluationService orchestrates TOR evaluation for one student account:
// grading passes, curriculum sync-matching, intake copy, overrides and
// reporting. All per-batch mutations are computed in memory first, then
// committed in a single transaction.
type EvaluationService struct {
	transcriptRepo *repository.TranscriptRepository
	curriculumRepo *repository.CurriculumRepository
	transfereeRepo *repository.TransfereeRepository
	db             *gorm.DB
}

func NewEvaluationService(
	transcriptRepo *repository.TranscriptRepository,
	curriculumRepo *repository.CurriculumRepository,
	transfereeRepo *repository.TransfereeRepository,
) *EvaluationService {
	return &EvaluationService{
		transcriptRepo: transcriptRepo,
		curriculumRepo: curriculumRepo,
		transfereeRepo: transfereeRepo,
		db:             transcriptRepo.DB(),
	}
}

// MatchReportRow is one sync-match result returned to the caller.
type MatchReportRow struct {
	SubjectCode        string  `json:"subject_code"`
	SubjectDescription string  `json:"subject_description"`
	TotalAcademicUnits float64 `json:"total_academic_units"`
	FinalGrade         float64 `json:"final_grade"`
	Remarks            string  `json:"remarks"`
	Summary            string  `json:"summary"`
	CreditEvaluation   string  `json:"credit_evaluation"`
	MatchAccuracy      int     `json:"match_accuracy"`
	MatchedSubject     *string `json:"matched_subject"`
}

// ApplyStandardGrading classifies every entry on the standard scale
// (1.0-2.9 passing) and regenerates remarks and summary together.
func (s *EvaluationService) ApplyStandardGrading(accountID string) ([]models.TranscriptEntry, error) {
	return s.applyGrading(accountID, grading.ScaleStandard)
}

// ApplyReverseGrading classifies every entry on the reverse scale
// (3.0-5.0 passing) and regenerates remarks and summary together.
func (s *EvaluationService) ApplyReverseGrading(accountID string) ([]models.TranscriptEntry, error) {
	return s.applyGrading(accountID, grading.ScaleReverse)
}

func (s *EvaluationService) applyGrading(accountID string, scale grading.Scale) ([]models.TranscriptEntry, error) {
	if accountID == "" {
		return nil, apperr.Validation("account ID is required")
	}

	entries, err := s.transcriptRepo.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperr.NotFound("TOR entries", accountID)
	}

	catalog, err := s.curriculumRepo.FindActive()
	if err != nil {
		return nil, err
	}

	// Compute everything before touching the database.
	for i := range entries {
		entry := &entries[i]
		entry.Remarks = grading.Classify(entry.FinalGrade, scale)
		entry.Summary = GenerateSummary(entry, catalog)
	}

	if err := s.commitEntries(entries, []string{"remarks", "summary"}); err != nil {
		return nil, err
	}

	log.Printf("Applied %s grading for %d entries for account: %s", scale, len(entries), accountID)
	return entries, nil
}

// SyncCurriculumMatching matches every entry against the whole active catalog
// and writes summary, disposition and match details. Returns one report row
// per entry with the match metadata.
func (s *EvaluationService) SyncCurriculumMatching(accountID string) ([]MatchReportRow, error) {
	if accountID == "" {
		return nil, apperr.Validation("account ID is required")
	}

	entries, err := s.transcriptRepo.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperr.NotFound("TOR entries", accountID)
	}

	catalog, err := s.curriculumRepo.FindActive()
	if err != nil {
		return nil, err
	}

	rows := make([]MatchReportRow, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		res := matching.FindBestMatch(entry.SubjectDescription, entry.SubjectCode, catalog)

		if MeetsThreshold(res.Score) {
			entry.Summary = matchFoundSummary(res.Subject.SubjectCode, res.Score, entry.TotalAcademicUnits, res.Subject.Units)
			entry.CreditEvaluation = DecideDisposition(res.Score, entry.IsPassing())
		} else {
			entry.Summary = noMatchSummary(res.Subject, res.Score)
			entry.CreditEvaluation = models.EvaluationInvestigate
		}

		row := MatchReportRow{
			SubjectCode:        entry.SubjectCode,
			SubjectDescription: entry.SubjectDescription,
			TotalAcademicUnits: entry.TotalAcademicUnits,
			FinalGrade:         entry.FinalGrade,
			Remarks:            entry.Remarks,
			Summary:            entry.Summary,
			CreditEvaluation:   entry.CreditEvaluation,
		}

		details := map[string]interface{}{
			"subject_code":    entry.SubjectCode,
			"candidate_count": res.CodeMatches,
			"score":           res.Score,
			"decision":        entry.CreditEvaluation,
		}
		if res.Subject != nil {
			row.MatchAccuracy = int(res.Score)
			code := res.Subject.SubjectCode
			row.MatchedSubject = &code
			details["matched_subject"] = code
			details["curriculum_units"] = res.Subject.Units
		}

		detailsJSON, err := json.Marshal(details)
		if err != nil {
			// Abort before commit: no entry from this batch is persisted.
			return nil, err
		}
		entry.MatchDetails = detailsJSON

		rows = append(rows, row)
	}

	if err := s.commitEntries(entries, []string{"summary", "credit_evaluation", "match_details"}); err != nil {
		return nil, err
	}

	log.Printf("Synced %d entries with curriculum matching for account: %s", len(rows), accountID)
	return rows, nil
}

// commitEntries persists the given fields for all entries in one transaction.
// Any error rolls back the whole batch.
func (s *EvaluationService) commitEntries(entries []models.TranscriptEntry, fields []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			if err := tx.Model(&entries[i]).Select(fields).Updates(entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CopyTranscriptEntries seeds transcript entries from the intake rows.
// Idempotent: existing (account, subject) rows are left untouched. Returns
// all rows for the account plus how many were newly created.
func (s *EvaluationService) CopyTranscriptEntries(accountID string) ([]models.TranscriptEntry, int, error) {
	if accountID == "" {
		return nil, 0, apperr.Validation("account ID is required")
	}

	source, err := s.transfereeRepo.FindByAccount(accountID)
	if err != nil {
		return nil, 0, err
	}
	if len(source) == 0 {
		return nil, 0, apperr.NotFound("transferee TOR entries", accountID)
	}

	var copied []models.TranscriptEntry
	created := 0

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, src := range source {
			var entry models.TranscriptEntry
			res := tx.Where("account_id = ? AND subject_code = ?", src.AccountID, src.SubjectCode).
				Attrs(models.TranscriptEntry{
					ID:                 uuid.New(),
					AccountID:          src.AccountID,
					SubjectCode:        src.SubjectCode,
					SubjectDescription: src.SubjectDescription,
					TotalAcademicUnits: src.TotalAcademicUnits,
					FinalGrade:         src.FinalGrade,
					Remarks:            src.Remarks,
					CreditEvaluation:   models.EvaluationVoid,
				}).
				FirstOrCreate(&entry)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				created++
			}
			copied = append(copied, entry)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	log.Printf("Copied %d new TOR entries (total: %d) for account: %s", created, len(copied), accountID)
	return copied, created, nil
}

// UpdateCreditEvaluation overrides the disposition (and optionally notes) of
// one entry. The evaluation must be one of the fixed dispositions.
func (s *EvaluationService) UpdateCreditEvaluation(entryID uuid.UUID, evaluation string, notes *string) (*models.TranscriptEntry, error) {
	if !models.IsValidEvaluation(evaluation) {
		return nil, apperr.Validation(
			"invalid evaluation %q, must be one of: %s",
			evaluation, strings.Join(models.ValidEvaluations(), ", "),
		)
	}

	entry, err := s.transcriptRepo.GetByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperr.NotFound("transcript entry", entryID.String())
	}

	entry.CreditEvaluation = evaluation
	updates := map[string]interface{}{"credit_evaluation": evaluation}
	if notes != nil {
		entry.Notes = *notes
		updates["notes"] = *notes
	}

	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return nil, err
	}

	log.Printf("Updated credit evaluation to %q for entry: %s", evaluation, entryID)
	return entry, nil
}

// PassedSubject carries the per-subject remarks for a bulk results update.
type PassedSubject struct {
	SubjectCode string `json:"subject_code"`
	Remarks     string `json:"remarks"`
}

// ResultCounts reports what a bulk results update changed.
type ResultCounts struct {
	Deleted int64 `json:"deleted"`
	Updated int64 `json:"updated"`
}

// UpdateTranscriptResults deletes the failed subjects and updates remarks on
// the passed ones, atomically.
func (s *EvaluationService) UpdateTranscriptResults(accountID string, failedSubjects []string, passedSubjects []PassedSubject) (ResultCounts, error) {
	var counts ResultCounts
	if accountID == "" {
		return counts, apperr.Validation("account ID is required")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(failedSubjects) > 0 {
			res := tx.Where("account_id = ? AND subject_code IN ?", accountID, failedSubjects).
				Delete(&models.TranscriptEntry{})
			if res.Error != nil {
				return res.Error
			}
			counts.Deleted = res.RowsAffected
		}

		for _, subject := range passedSubjects {
			res := tx.Model(&models.TranscriptEntry{}).
				Where("account_id = ? AND subject_code = ?", accountID, subject.SubjectCode).
				Update("remarks", subject.Remarks)
			if res.Error != nil {
				return res.Error
			}
			counts.Updated += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return ResultCounts{}, err
	}

	log.Printf("Updated TOR results for %s: %d deleted, %d updated", accountID, counts.Deleted, counts.Updated)
	return counts, nil
}

// ComparisonStats aggregates an account's evaluation state.
type ComparisonStats struct {
	Total        int64   `json:"total"`
	Accepted     int64   `json:"accepted"`
	Denied       int64   `json:"denied"`
	Void         int64   `json:"void"`
	Investigate  int64   `json:"investigate"`
	Passed       int64   `json:"passed"`
	Failed       int64   `json:"failed"`
	AverageGrade float64 `json:"average_grade"`
	TotalUnits   float64 `json:"total_units"`
}

type statRow struct {
	Value string
	Count int64
}

func (s *EvaluationService) GetComparisonStatistics(accountID string) (ComparisonStats, error) {
	var stats ComparisonStats

	var evalRows []statRow
	err := s.db.Model(&models.TranscriptEntry{}).
		Where("account_id = ?", accountID).
		Select("credit_evaluation as value, COUNT(*) as count").
		Group("credit_evaluation").
		Scan(&evalRows).Error
	if err != nil {
		return stats, err
	}
	for _, r := range evalRows {
		stats.Total += r.Count
		switch r.Value {
		case models.EvaluationAccepted:
			stats.Accepted = r.Count
		case models.EvaluationDenied:
			stats.Denied = r.Count
		case models.EvaluationVoid:
			stats.Void = r.Count
		case models.EvaluationInvestigate:
			stats.Investigate = r.Count
		}
	}

	var remarkRows []statRow
	err = s.db.Model(&models.TranscriptEntry{}).
		Where("account_id = ?", accountID).
		Select("remarks as value, COUNT(*) as count").
		Group("remarks").
		Scan(&remarkRows).Error
	if err != nil {
		return stats, err
	}
	for _, r := range remarkRows {
		switch r.Value {
		case models.RemarksPassed:
			stats.Passed = r.Count
		case models.RemarksFailed:
			stats.Failed = r.Count
		}
	}

	var agg struct {
		AvgGrade float64
		SumUnits float64
	}
	err = s.db.Model(&models.TranscriptEntry{}).
		Where("account_id = ?", accountID).
		Select("COALESCE(AVG(final_grade),0) as avg_grade, COALESCE(SUM(total_academic_units),0) as sum_units").
		Scan(&agg).Error
	if err != nil {
		return stats, err
	}
	stats.AverageGrade = math.Round(agg.AvgGrade*100) / 100
	stats.TotalUnits = agg.SumUnits

	return stats, nil
}

// TrackerRow is one accreditation-tracking line per subject.
type TrackerRow struct {
	AccountID          string `json:"account_id"`
	SubjectCode        string `json:"subject_code"`
	SubjectDescription string `json:"subject_description"`
	CreditEvaluation   string `json:"credit_evaluation"`
}

func (s *EvaluationService) GetTrackerAccreditation(accountID string) ([]TrackerRow, error) {
	var rows []TrackerRow
	err := s.db.Model(&models.TranscriptEntry{}).
		Where("account_id = ?", accountID).
		Select("account_id, subject_code, subject_description, credit_evaluation").
		Order("created_at ASC").
		Scan(&rows).Error
	return rows, err
}
