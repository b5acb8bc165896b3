package matching

import (
	"strings"

	"transcript-evaluation-backend/internal/models"
	"transcript-evaluation-backend/internal/services/similarity"
)

// MatchResult is the outcome of matching one transcript entry against the catalog.
type MatchResult struct {
	// Subject is the best-scoring curriculum subject, nil when the catalog is
	// empty or nothing scored above zero.
	Subject *models.CurriculumSubject
	// Score is the similarity percentage of the best match, 0-100.
	Score float64
	// CodeMatches counts catalog subjects whose code equals the entry's code.
	// Independent signal, not part of the similarity search.
	CodeMatches int
}

// FindBestMatch scores the entry description against every active catalog
// subject and keeps the maximum. Each subject's description variants are
// joined space-separated before scoring. Ties keep the first-seen subject:
// only a strictly greater score replaces the current best.
func FindBestMatch(description, subjectCode string, catalog []models.CurriculumSubject) MatchResult {
	var result MatchResult

	for i := range catalog {
		subject := &catalog[i]
		if !subject.IsActive {
			continue
		}

		if subject.SubjectCode == subjectCode {
			result.CodeMatches++
		}

		combined := strings.Join(subject.Descriptions, " ")
		score := similarity.Ratio(description, combined)
		if score > result.Score {
			result.Score = score
			result.Subject = subject
		}
	}

	return result
}

// BestVariantScore returns the highest per-variant similarity between the
// description and catalog subjects sharing the given subject code, along with
// the owning subject's code. Used by the narrative summary, which looks only
// at same-code candidates and scores each phrasing variant on its own.
func BestVariantScore(description, subjectCode string, catalog []models.CurriculumSubject) (float64, string) {
	best := 0.0
	bestCode := ""

	for i := range catalog {
		subject := &catalog[i]
		if !subject.IsActive || subject.SubjectCode != subjectCode {
			continue
		}
		for _, variant := range subject.Descriptions {
			if score := similarity.Ratio(description, variant); score > best {
				best = score
				bestCode = subject.SubjectCode
			}
		}
	}

	return best, bestCode
}
