package handlers

import (
	"net/http"

	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for matches of a team
type MatchHandler struct {
	stateService service.StateServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(stateService service.StateServiceInterface) *MatchHandler {
	return &MatchHandler{
		stateService: stateService,
	}
}

// CreateMatch handles POST /teams/:teamId/matches
// @Summary Record a match
// @Description Adds a fixture with the coach's notes
// @Tags matches
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param match body service.MatchRequest true "Match data"
// @Success 201 {object} models.Match "Created match"
// @Success 204 "Team does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.MatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.stateService.CreateMatch(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusCreated, match)
}

// UpdateMatch handles PATCH /teams/:teamId/matches/:matchId
// @Summary Update a match
// @Description Merge the provided fields into the match. An unknown team or match is a no-op.
// @Tags matches
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param matchId path string true "Match ID"
// @Param match body service.UpdateMatchRequest true "Fields to change"
// @Success 200 {object} models.Match "Updated match"
// @Success 204 "Team or match does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/matches/{matchId} [patch]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	var req service.UpdateMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.stateService.UpdateMatch(c.Request.Context(), c.Param("teamId"), c.Param("matchId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, match)
}

// DeleteMatch handles DELETE /teams/:teamId/matches/:matchId
// @Summary Move a match to the trash
// @Tags matches
// @Produce json
// @Param teamId path string true "Team ID"
// @Param matchId path string true "Match ID"
// @Success 200 {object} models.TrashItem "Created trash item"
// @Success 204 "Team or match does not exist"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/matches/{matchId} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	item, err := h.stateService.DeleteMatch(c.Request.Context(), c.Param("teamId"), c.Param("matchId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, item)
}
