package handlers

import (
	"net/http"

	"coach-planner-backend/internal/database/models"
	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GenerationHandler exposes the text-generation gateway
type GenerationHandler struct {
	generationService service.GenerationServiceInterface
	stateService      service.StateServiceInterface
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService service.GenerationServiceInterface, stateService service.StateServiceInterface) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		stateService:      stateService,
	}
}

// SeasonObjectivesResponse carries the generated objective bullets
type SeasonObjectivesResponse struct {
	Text string `json:"text" example:"- Conducción con ambas piernas\n- Pase corto al primer toque"`
}

// ChatRequest is a one-off assistant question. TeamID selects the team context;
// History carries the prior turns.
type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	TeamID  string               `json:"teamId,omitempty"`
	History []models.ChatMessage `json:"history,omitempty"`
}

// ChatResponse carries the assistant reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// TrainingSession handles POST /generation/training-session
// @Summary Generate a training session
// @Description Asks the provider for the five content blocks. Nothing is saved.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body service.TrainingSessionParams true "Session parameters"
// @Success 200 {object} models.TrainingContent "Generated content"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 503 {object} ErrorResponse "Provider unavailable or returned unusable content"
// @Router /generation/training-session [post]
func (h *GenerationHandler) TrainingSession(c *gin.Context) {
	var params service.TrainingSessionParams
	if !bindJSON(c, &params) {
		return
	}

	content, err := h.generationService.GenerateTrainingSession(c.Request.Context(), &params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// SeasonObjectives handles POST /generation/season-objectives
// @Summary Generate season objectives
// @Tags generation
// @Accept json
// @Produce json
// @Param request body service.SeasonObjectivesParams true "Objective parameters"
// @Success 200 {object} SeasonObjectivesResponse "Generated objectives"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 503 {object} ErrorResponse "Provider unavailable"
// @Router /generation/season-objectives [post]
func (h *GenerationHandler) SeasonObjectives(c *gin.Context) {
	var params service.SeasonObjectivesParams
	if !bindJSON(c, &params) {
		return
	}

	text, err := h.generationService.GenerateSeasonObjectives(c.Request.Context(), &params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SeasonObjectivesResponse{Text: text})
}

// Chat handles POST /generation/chat
// @Summary Ask the assistant without saving
// @Tags generation
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question"
// @Success 200 {object} ChatResponse "Assistant reply"
// @Failure 400 {object} ErrorResponse "Empty message"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 503 {object} ErrorResponse "Provider unavailable"
// @Router /generation/chat [post]
func (h *GenerationHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if !bindJSON(c, &req) {
		return
	}

	var team *models.Team
	if req.TeamID != "" {
		var err error
		if team, err = h.stateService.GetTeam(c.Request.Context(), req.TeamID); err != nil {
			respondError(c, err)
			return
		}
	}

	reply, err := h.generationService.ChatReply(c.Request.Context(), req.Message, service.NewChatContext(team, req.History))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
