package handlers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/auth"
	"github.com/Isak-k/Sanbitu-FC/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploads above this size are rejected before the image host is contacted
const maxUploadBytes = 16 << 20

// GalleryHandler handles HTTP requests for the photo gallery
type GalleryHandler struct {
	galleryService *service.GalleryService
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

// UploadPhoto uploads a new gallery photo
// @Summary Upload gallery photo
// @Description Upload an image as multipart form data. The file is stored on the external image host and only its URLs are persisted.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param title formData string true "Photo title"
// @Param caption formData string false "Photo caption"
// @Param taken_at formData string false "When the photo was taken (RFC3339)"
// @Success 201 {object} service.GalleryPhotoResponse "Successfully uploaded photo"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Failure 503 {object} map[string]interface{} "Image host not configured"
// @Security BearerAuth
// @Router /gallery [post]
func (h *GalleryHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}

	req := &service.UploadPhotoRequest{
		Title:   c.PostForm("title"),
		Caption: c.PostForm("caption"),
	}

	if takenAtStr := c.PostForm("taken_at"); takenAtStr != "" {
		takenAt, err := time.Parse(time.RFC3339, takenAtStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid taken_at timestamp, expected RFC3339"})
			return
		}
		req.TakenAt = &takenAt
	}

	var uploaderID *uuid.UUID
	if id, ok := auth.GetUserID(c); ok {
		uploaderID = &id
	}

	photo, err := h.galleryService.UploadPhoto(uploaderID, req, imageData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// GetPhoto retrieves a gallery photo by ID
// @Summary Get gallery photo by ID
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Photo ID (UUID)"
// @Success 200 {object} service.GalleryPhotoResponse "Successfully retrieved photo"
// @Failure 404 {object} map[string]interface{} "Photo not found"
// @Security BearerAuth
// @Router /gallery/{id} [get]
func (h *GalleryHandler) GetPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return
	}

	photo, err := h.galleryService.GetPhotoByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, photo)
}

// ListPhotos retrieves gallery photos with pagination
// @Summary List gallery photos
// @Description Get gallery photos, newest first
// @Tags gallery
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved photos list"
// @Security BearerAuth
// @Router /gallery [get]
func (h *GalleryHandler) ListPhotos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	photos, total, err := h.galleryService.ListPhotos(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"photos": photos,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// UpdatePhoto updates a photo's metadata
// @Summary Update gallery photo
// @Description Update a photo's title, caption or taken_at. The image itself is immutable.
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Photo ID (UUID)"
// @Param photo body service.UpdatePhotoRequest true "Updated metadata"
// @Success 200 {object} service.GalleryPhotoResponse "Successfully updated photo"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Photo not found"
// @Security BearerAuth
// @Router /gallery/{id} [put]
func (h *GalleryHandler) UpdatePhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return
	}

	var req service.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, err := h.galleryService.UpdatePhoto(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, photo)
}

// DeletePhoto deletes a gallery photo
// @Summary Delete gallery photo
// @Description Delete a photo record. The remote image copy is removed best-effort.
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Photo ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted photo"
// @Failure 404 {object} map[string]interface{} "Photo not found"
// @Security BearerAuth
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) DeletePhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return
	}

	if err := h.galleryService.DeletePhoto(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery photo deleted successfully"})
}
