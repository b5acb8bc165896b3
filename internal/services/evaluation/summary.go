package evaluation

import (
	"fmt"
	"strings"

	"transcript-evaluation-backend/internal/models"
	"transcript-evaluation-backend/internal/services/matching"
)

// GenerateSummary builds the per-entry narrative report used by the grading
// passes. Four independent checks, one line each, fixed order: subject code,
// description, units, grade. This report answers "does this look like a
// recognized subject" and is deliberately separate from the sync-path
// disposition decision; the two may disagree on the same entry.
func GenerateSummary(entry *models.TranscriptEntry, catalog []models.CurriculumSubject) string {
	var lines []string

	matchCount := 0
	unitsMatch := false
	for i := range catalog {
		subject := &catalog[i]
		if !subject.IsActive {
			continue
		}
		if subject.SubjectCode == entry.SubjectCode {
			matchCount++
		}
		if subject.Units == int(entry.TotalAcademicUnits) {
			unitsMatch = true
		}
	}

	switch matchCount {
	case 0:
		lines = append(lines, "⚠ Subject Code: No matches found in curriculum")
	case 1:
		lines = append(lines, "✓ Subject Code: Exact match found in curriculum")
	default:
		lines = append(lines, fmt.Sprintf("⚠ Subject Code: %d matches found (review needed)", matchCount))
	}

	best, bestCode := matching.BestVariantScore(entry.SubjectDescription, entry.SubjectCode, catalog)
	switch {
	case best >= acceptThreshold:
		lines = append(lines, fmt.Sprintf("✓ Description: %.1f%% match with %s", best, bestCode))
	case best >= reviewThreshold:
		lines = append(lines, fmt.Sprintf("⚠ Description: %.1f%% match with %s (review needed)", best, bestCode))
	default:
		lines = append(lines, fmt.Sprintf("✗ Description: Low similarity (%.1f%%)", best))
	}

	units := int(entry.TotalAcademicUnits)
	if unitsMatch {
		lines = append(lines, fmt.Sprintf("✓ Units: %d units matches curriculum", units))
	} else {
		lines = append(lines, fmt.Sprintf("⚠ Units: %d units - verify equivalency", units))
	}

	if entry.IsPassing() {
		lines = append(lines, fmt.Sprintf("✓ Grade: %g (Passing)", entry.FinalGrade))
	} else {
		lines = append(lines, fmt.Sprintf("✗ Grade: %g (Not passing)", entry.FinalGrade))
	}

	return strings.Join(lines, "\n")
}
