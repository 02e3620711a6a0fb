package handlers

import (
	"net/http"

	"github.com/Isak-k/Sanbitu-FC/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchEventHandler handles HTTP requests for match events
type MatchEventHandler struct {
	eventService *service.MatchEventService
}

// NewMatchEventHandler creates a new match event handler
func NewMatchEventHandler(eventService *service.MatchEventService) *MatchEventHandler {
	return &MatchEventHandler{
		eventService: eventService,
	}
}

// ListEvents retrieves all events of a match
// @Summary List match events
// @Description Get all events of a match ordered by minute
// @Tags match-events
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved events"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/events [get]
func (h *MatchEventHandler) ListEvents(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	events, err := h.eventService.ListEvents(matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

// CreateEvent records a new match event
// @Summary Record match event
// @Description Record a goal, assist, card or substitution. The player reference is optional for opposition events.
// @Tags match-events
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param event body service.CreateMatchEventRequest true "Event data"
// @Success 201 {object} service.MatchEventResponse "Successfully recorded event"
// @Failure 400 {object} map[string]interface{} "Invalid event type or minute"
// @Failure 404 {object} map[string]interface{} "Match or player not found"
// @Security BearerAuth
// @Router /matches/{id}/events [post]
func (h *MatchEventHandler) CreateEvent(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req service.CreateMatchEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent updates a match event
// @Summary Update match event
// @Tags match-events
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param eventId path string true "Event ID (UUID)"
// @Param event body service.UpdateMatchEventRequest true "Updated event data"
// @Success 200 {object} service.MatchEventResponse "Successfully updated event"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /matches/{id}/events/{eventId} [put]
func (h *MatchEventHandler) UpdateEvent(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req service.UpdateMatchEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(matchID, eventID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes a match event
// @Summary Delete match event
// @Tags match-events
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param eventId path string true "Event ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted event"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /matches/{id}/events/{eventId} [delete]
func (h *MatchEventHandler) DeleteEvent(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.eventService.DeleteEvent(matchID, eventID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match event deleted successfully"})
}
