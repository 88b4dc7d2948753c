package handlers

import (
	"net/http"

	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team and season operations
type TeamHandler struct {
	stateService service.StateServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(stateService service.StateServiceInterface) *TeamHandler {
	return &TeamHandler{
		stateService: stateService,
	}
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Description Get every team in creation order
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team "Teams"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.stateService.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team with the four default season phases. The first team becomes the active one.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.stateService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:teamId
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} models.Team "Team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.stateService.GetTeam(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PATCH /teams/:teamId
// @Summary Update a team
// @Description Merge the provided fields into the team. An unknown team is a no-op.
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} models.Team "Updated team"
// @Success 204 "Team does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.stateService.UpdateTeam(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:teamId
// @Summary Move a team to the trash
// @Description The team and everything it owns become a single trash item
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} models.TrashItem "Created trash item"
// @Success 204 "Team does not exist"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	item, err := h.stateService.DeleteTeam(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, item)
}

// GetSummary handles GET /teams/:teamId/summary
// @Summary Team dashboard summary
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} service.TeamSummary "Summary"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{teamId}/summary [get]
func (h *TeamHandler) GetSummary(c *gin.Context) {
	summary, err := h.stateService.GetTeamSummary(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetProgress handles GET /teams/:teamId/progress
// @Summary Team progress by skill
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} service.TeamProgress "Rating distribution per skill"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{teamId}/progress [get]
func (h *TeamHandler) GetProgress(c *gin.Context) {
	progress, err := h.stateService.GetTeamProgress(c.Request.Context(), c.Param("teamId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// UpdateSeasonPhase handles PATCH /teams/:teamId/season-phases/:phaseId
// @Summary Edit the objectives of a season phase
// @Tags season
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param phaseId path string true "Phase ID (p1..p4)"
// @Param phase body service.UpdateSeasonPhaseRequest true "Fields to change"
// @Success 200 {object} models.SeasonPhase "Updated phase"
// @Success 204 "Team or phase does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/season-phases/{phaseId} [patch]
func (h *TeamHandler) UpdateSeasonPhase(c *gin.Context) {
	var req service.UpdateSeasonPhaseRequest
	if !bindJSON(c, &req) {
		return
	}

	phase, err := h.stateService.UpdateSeasonPhase(c.Request.Context(), c.Param("teamId"), c.Param("phaseId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, phase)
}
