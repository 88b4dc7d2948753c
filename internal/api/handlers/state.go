package handlers

import (
	"net/http"

	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StateHandler serves the full planner snapshot and the active team pointer
type StateHandler struct {
	stateService service.StateServiceInterface
}

// NewStateHandler creates a new state handler
func NewStateHandler(stateService service.StateServiceInterface) *StateHandler {
	return &StateHandler{
		stateService: stateService,
	}
}

// GetState handles GET /state
// @Summary Get the full planner state
// @Description Returns every team with its players, trainings, matches and chats, the active team id and the trash
// @Tags state
// @Produce json
// @Success 200 {object} models.AppState "Current state"
// @Router /state [get]
func (h *StateHandler) GetState(c *gin.Context) {
	state, err := h.stateService.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetActiveTeam handles PUT /state/active-team
// @Summary Select the active team
// @Description Points the active team at teamId, or clears it when teamId is null
// @Tags state
// @Accept json
// @Param request body service.SetActiveTeamRequest true "Team to activate"
// @Success 204 "Active team updated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /state/active-team [put]
func (h *StateHandler) SetActiveTeam(c *gin.Context) {
	var req service.SetActiveTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.stateService.SetActiveTeamID(c.Request.Context(), req.TeamID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
