package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"transcript-evaluation-backend/internal/services/evaluation"
)

type EvaluationHandler struct {
	service *evaluation.EvaluationService
}

func NewEvaluationHandler(s *evaluation.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{service: s}
}

func (h *EvaluationHandler) ApplyStandardGrading(c *gin.Context) {
	accountID := c.Param("accountId")

	entries, err := h.service.ApplyStandardGrading(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "standard grading applied",
		"count":   len(entries),
		"entries": entries,
	})
}

func (h *EvaluationHandler) ApplyReverseGrading(c *gin.Context) {
	accountID := c.Param("accountId")

	entries, err := h.service.ApplyReverseGrading(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "reverse grading applied",
		"count":   len(entries),
		"entries": entries,
	})
}

func (h *EvaluationHandler) SyncCurriculumMatching(c *gin.Context) {
	accountID := c.Param("accountId")

	rows, err := h.service.SyncCurriculumMatching(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "curriculum matching synced",
		"count":   len(rows),
		"results": rows,
	})
}

func (h *EvaluationHandler) CopyTranscriptEntries(c *gin.Context) {
	accountID := c.Param("accountId")

	entries, created, err := h.service.CopyTranscriptEntries(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "TOR entries copied",
		"created": created,
		"total":   len(entries),
		"entries": entries,
	})
}

func (h *EvaluationHandler) UpdateCreditEvaluation(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry ID"})
		return
	}

	var payload struct {
		Evaluation string  `json:"evaluation"`
		Notes      *string `json:"notes"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	entry, err := h.service.UpdateCreditEvaluation(entryID, payload.Evaluation, payload.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "credit evaluation updated",
		"entry":   entry,
	})
}

func (h *EvaluationHandler) UpdateTranscriptResults(c *gin.Context) {
	accountID := c.Param("accountId")

	var payload struct {
		FailedSubjects []string                   `json:"failed_subjects"`
		PassedSubjects []evaluation.PassedSubject `json:"passed_subjects"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	counts, err := h.service.UpdateTranscriptResults(accountID, payload.FailedSubjects, payload.PassedSubjects)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "TOR results updated",
		"deleted": counts.Deleted,
		"updated": counts.Updated,
	})
}

func (h *EvaluationHandler) GetComparisonStatistics(c *gin.Context) {
	accountID := c.Param("accountId")

	stats, err := h.service.GetComparisonStatistics(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

func (h *EvaluationHandler) GetTrackerAccreditation(c *gin.Context) {
	accountID := c.Param("accountId")

	rows, err := h.service.GetTrackerAccreditation(accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracker": rows})
}
