package handlers

import (
	"net/http"

	"github.com/Isak-k/Sanbitu-FC/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LineupHandler handles HTTP requests for match lineups
type LineupHandler struct {
	lineupService *service.LineupService
}

// NewLineupHandler creates a new lineup handler
func NewLineupHandler(lineupService *service.LineupService) *LineupHandler {
	return &LineupHandler{
		lineupService: lineupService,
	}
}

// GetLineup retrieves the lineup for a match
// @Summary Get match lineup
// @Description Get all lineup entries for a match, starters before substitutes
// @Tags lineups
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved lineup"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/lineup [get]
func (h *LineupHandler) GetLineup(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	entries, err := h.lineupService.GetLineup(matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lineup": entries,
		"total":  len(entries),
	})
}

// AddEntry adds a player to a match lineup
// @Summary Add lineup entry
// @Description Add a player to the match lineup. At most 11 starting players per match, and only active players can be selected.
// @Tags lineups
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param entry body service.AddLineupEntryRequest true "Lineup entry data"
// @Success 201 {object} service.LineupEntryResponse "Successfully added lineup entry"
// @Failure 400 {object} map[string]interface{} "Invalid request or starting lineup full"
// @Failure 404 {object} map[string]interface{} "Match or player not found"
// @Failure 409 {object} map[string]interface{} "Player already in lineup"
// @Security BearerAuth
// @Router /matches/{id}/lineup [post]
func (h *LineupHandler) AddEntry(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req service.AddLineupEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.lineupService.AddEntry(matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry updates a lineup entry
// @Summary Update lineup entry
// @Description Change a lineup entry's role. Promoting to starting respects the 11-player cap.
// @Tags lineups
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param entryId path string true "Lineup entry ID (UUID)"
// @Param entry body service.UpdateLineupEntryRequest true "Updated entry data"
// @Success 200 {object} service.LineupEntryResponse "Successfully updated lineup entry"
// @Failure 400 {object} map[string]interface{} "Invalid request or starting lineup full"
// @Failure 404 {object} map[string]interface{} "Lineup entry not found"
// @Security BearerAuth
// @Router /matches/{id}/lineup/{entryId} [put]
func (h *LineupHandler) UpdateEntry(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lineup entry ID"})
		return
	}

	var req service.UpdateLineupEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.lineupService.UpdateEntry(matchID, entryID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// RemoveEntry removes a player from a match lineup
// @Summary Remove lineup entry
// @Tags lineups
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param entryId path string true "Lineup entry ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully removed lineup entry"
// @Failure 404 {object} map[string]interface{} "Lineup entry not found"
// @Security BearerAuth
// @Router /matches/{id}/lineup/{entryId} [delete]
func (h *LineupHandler) RemoveEntry(c *gin.Context) {
	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lineup entry ID"})
		return
	}

	if err := h.lineupService.RemoveEntry(matchID, entryID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lineup entry removed successfully"})
}
