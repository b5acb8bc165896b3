package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"transcript-evaluation-backend/internal/services/profile"
)

type ProfileHandler struct {
	service *profile.ProfileService
}

func NewProfileHandler(s *profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var payload struct {
		UserID string `json:"user_id"`
		profile.Input
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := h.service.CreateProfile(payload.UserID, payload.Input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "profile created",
		"profile": created,
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("userId")

	var payload profile.Input
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updated, err := h.service.UpdateProfile(userID, payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated",
		"profile": updated,
	})
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID := c.Param("userId")

	var payload profile.Input
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	saved, err := h.service.SaveProfile(userID, payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile saved",
		"profile": saved,
	})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")

	p, err := h.service.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	var isComplete *bool
	if v := c.Query("is_complete"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_complete value"})
			return
		}
		isComplete = &parsed
	}

	profiles, err := h.service.GetAllProfiles(isComplete, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(profiles),
		"profiles": profiles,
	})
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID := c.Param("userId")

	if err := h.service.DeleteProfile(userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
}

func (h *ProfileHandler) CheckProfileExists(c *gin.Context) {
	userID := c.Param("userId")

	exists, err := h.service.CheckProfileExists(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (h *ProfileHandler) GetProfileStatistics(c *gin.Context) {
	stats, err := h.service.GetProfileStatistics()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
