package grading

import "transcript-evaluation-backend/internal/models"

// Scale selects which numeric band counts as passing.
type Scale string

const (
	// ScaleStandard: 1.0 is the best grade, 5.0 the worst.
	ScaleStandard Scale = "standard"
	// ScaleReverse: some sending institutions grade the other way around.
	ScaleReverse Scale = "reverse"
)

// Grade band boundaries shared by both scales.
const (
	passingBandMin = 1.0
	passingBandMax = 2.9
	failingBandMin = 3.0
	failingBandMax = 5.0
)

// Classify maps a numeric grade to a remarks value under the given scale.
// Grades outside [1.0, 5.0] (or in the 2.9-3.0 gap) are invalid on both scales.
func Classify(grade float64, scale Scale) string {
	inLower := grade >= passingBandMin && grade <= passingBandMax
	inUpper := grade >= failingBandMin && grade <= failingBandMax

	switch {
	case !inLower && !inUpper:
		return models.RemarksInvalid
	case scale == ScaleReverse:
		if inUpper {
			return models.RemarksPassed
		}
		return models.RemarksFailed
	default:
		if inLower {
			return models.RemarksPassed
		}
		return models.RemarksFailed
	}
}
