package handlers

import (
	"net/http"

	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for players of a team
type PlayerHandler struct {
	stateService service.StateServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(stateService service.StateServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		stateService: stateService,
	}
}

// CreatePlayer handles POST /teams/:teamId/players
// @Summary Add a player to a team
// @Description Adds a player with an initial assessment on the four skills
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param player body service.PlayerRequest true "Player data"
// @Success 201 {object} models.Player "Created player"
// @Success 204 "Team does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.PlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	player, err := h.stateService.CreatePlayer(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusCreated, player)
}

// UpdatePlayer handles PATCH /teams/:teamId/players/:playerId
// @Summary Update a player
// @Description Merge the provided fields into the player. An unknown team or player is a no-op.
// @Tags players
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param playerId path string true "Player ID"
// @Param player body service.UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} models.Player "Updated player"
// @Success 204 "Team or player does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/players/{playerId} [patch]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	var req service.UpdatePlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	player, err := h.stateService.UpdatePlayer(c.Request.Context(), c.Param("teamId"), c.Param("playerId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, player)
}

// DeletePlayer handles DELETE /teams/:teamId/players/:playerId
// @Summary Move a player to the trash
// @Tags players
// @Produce json
// @Param teamId path string true "Team ID"
// @Param playerId path string true "Player ID"
// @Success 200 {object} models.TrashItem "Created trash item"
// @Success 204 "Team or player does not exist"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/players/{playerId} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	item, err := h.stateService.DeletePlayer(c.Request.Context(), c.Param("teamId"), c.Param("playerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, item)
}
