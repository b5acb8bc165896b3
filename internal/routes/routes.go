package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "transcript-evaluation-backend/internal/handlers"
	"transcript-evaluation-backend/internal/repository"
	"transcript-evaluation-backend/internal/services/evaluation"
	"transcript-evaluation-backend/internal/services/profile"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	transcriptRepo := repository.NewTranscriptRepository(db)
	curriculumRepo := repository.NewCurriculumRepository(db)
	transfereeRepo := repository.NewTransfereeRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	evalService := evaluation.NewEvaluationService(
		transcriptRepo,
		curriculumRepo,
		transfereeRepo,
	)
	profileService := profile.NewProfileService(profileRepo)

	evalHandler := handler.NewEvaluationHandler(evalService)
	profileHandler := handler.NewProfileHandler(profileService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Curriculum evaluation routes
	curriculum := api.Group("/curriculum")
	curriculum.POST("/:accountId/grading/standard", evalHandler.ApplyStandardGrading)
	curriculum.POST("/:accountId/grading/reverse", evalHandler.ApplyReverseGrading)
	curriculum.POST("/:accountId/sync-match", evalHandler.SyncCurriculumMatching)
	curriculum.POST("/:accountId/copy-entries", evalHandler.CopyTranscriptEntries)
	curriculum.POST("/:accountId/results", evalHandler.UpdateTranscriptResults)
	curriculum.GET("/:accountId/statistics", evalHandler.GetComparisonStatistics)
	curriculum.GET("/:accountId/tracker", evalHandler.GetTrackerAccreditation)

	// Entry-level routes
	entries := api.Group("/entries")
	entries.PUT("/:id/evaluation", evalHandler.UpdateCreditEvaluation)

	// Profile routes
	profiles := api.Group("/profiles")
	{
		profiles.POST("", profileHandler.CreateProfile)
		profiles.GET("", profileHandler.ListProfiles)
		profiles.GET("/stats/summary", profileHandler.GetProfileStatistics)
		profiles.GET("/:userId", profileHandler.GetProfile)
		profiles.PUT("/:userId", profileHandler.UpdateProfile)
		profiles.POST("/:userId/save", profileHandler.SaveProfile)
		profiles.GET("/:userId/exists", profileHandler.CheckProfileExists)
		profiles.DELETE("/:userId", profileHandler.DeleteProfile)
	}
}
