package evaluation

import (
	"fmt"

	"transcript-evaluation-backend/internal/models"
)

// Decision thresholds for the catalog-sync path.
const (
	// SimilarityThreshold is the minimum score for a best match to count as
	// a match at all; anything below goes to INVESTIGATE.
	SimilarityThreshold = 20.0

	acceptThreshold = 80.0
	reviewThreshold = 50.0
)

// MeetsThreshold reports whether a best-match score counts as a match.
func MeetsThreshold(score float64) bool {
	return score >= SimilarityThreshold
}

// DecideDisposition picks the credit-transfer outcome for a matched entry.
// Only called when the best-match score cleared SimilarityThreshold.
func DecideDisposition(score float64, passing bool) string {
	switch {
	case score >= acceptThreshold && passing:
		return models.EvaluationAccepted
	case score >= reviewThreshold:
		return models.EvaluationVoid
	default:
		return models.EvaluationDenied
	}
}

func matchFoundSummary(subjectCode string, score float64, studentUnits float64, curriculumUnits int) string {
	return fmt.Sprintf(
		"✓ Match Found\nCurriculum Subject: %s\nSimilarity: %d%%\nUnits: Student=%d, Curriculum=%d",
		subjectCode, int(score), int(studentUnits), curriculumUnits,
	)
}

func noMatchSummary(best *models.CurriculumSubject, score float64) string {
	bestCode := "None"
	if best != nil {
		bestCode = best.SubjectCode
	}
	return fmt.Sprintf(
		"✗ No Match Found\nDescription similarity below %d%% threshold\nBest match: %s (%d%%)",
		int(SimilarityThreshold), bestCode, int(score),
	)
}
