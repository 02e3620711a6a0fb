package handlers

import (
	"net/http"
	"strconv"

	"github.com/Isak-k/Sanbitu-FC/internal/auth"
	"github.com/Isak-k/Sanbitu-FC/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnnouncementHandler handles HTTP requests for club announcements
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// CreateAnnouncement creates a new announcement
// @Summary Create announcement
// @Description Publish a club announcement. The signed-in administrator is recorded as the author.
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body service.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} service.AnnouncementResponse "Successfully created announcement"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var authorID *uuid.UUID
	if id, ok := auth.GetUserID(c); ok {
		authorID = &id
	}

	announcement, err := h.announcementService.CreateAnnouncement(authorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// GetAnnouncement retrieves an announcement by ID
// @Summary Get announcement by ID
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} service.AnnouncementResponse "Successfully retrieved announcement"
// @Failure 404 {object} map[string]interface{} "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	announcement, err := h.announcementService.GetAnnouncementByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// ListAnnouncements retrieves announcements with pagination
// @Summary List announcements
// @Description Get announcements, pinned first and then newest first
// @Tags announcements
// @Accept json
// @Produce json
// @Param pinned query bool false "Filter by pinned status"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved announcements list"
// @Security BearerAuth
// @Router /announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var pinned *bool
	if pinnedStr := c.Query("pinned"); pinnedStr != "" {
		p, err := strconv.ParseBool(pinnedStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pinned filter"})
			return
		}
		pinned = &p
	}

	announcements, total, err := h.announcementService.ListAnnouncements(pinned, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"announcements": announcements,
		"total":         total,
		"limit":         limit,
		"offset":        offset,
	})
}

// UpdateAnnouncement updates an existing announcement
// @Summary Update announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Param announcement body service.UpdateAnnouncementRequest true "Updated announcement data"
// @Success 200 {object} service.AnnouncementResponse "Successfully updated announcement"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	var req service.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.UpdateAnnouncement(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement deletes an announcement
// @Summary Delete announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted announcement"
// @Failure 404 {object} map[string]interface{} "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	if err := h.announcementService.DeleteAnnouncement(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}
