package handlers

import (
	"net/http"

	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainingHandler handles HTTP requests for training sessions of a team
type TrainingHandler struct {
	stateService service.StateServiceInterface
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(stateService service.StateServiceInterface) *TrainingHandler {
	return &TrainingHandler{
		stateService: stateService,
	}
}

// CreateTraining handles POST /teams/:teamId/trainings
// @Summary Save a training session
// @Description Category, age and level are copied from the team. Duration, material and player count fall back to defaults.
// @Tags trainings
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param training body service.TrainingRequest true "Training data"
// @Success 201 {object} models.TrainingSession "Created training"
// @Success 204 "Team does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/trainings [post]
func (h *TrainingHandler) CreateTraining(c *gin.Context) {
	var req service.TrainingRequest
	if !bindJSON(c, &req) {
		return
	}

	training, err := h.stateService.CreateTraining(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusCreated, training)
}

// UpdateTraining handles PATCH /teams/:teamId/trainings/:trainingId
// @Summary Update a training
// @Description Merge the provided fields into the training. An unknown team or training is a no-op.
// @Tags trainings
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param trainingId path string true "Training ID"
// @Param training body service.UpdateTrainingRequest true "Fields to change"
// @Success 200 {object} models.TrainingSession "Updated training"
// @Success 204 "Team or training does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/trainings/{trainingId} [patch]
func (h *TrainingHandler) UpdateTraining(c *gin.Context) {
	var req service.UpdateTrainingRequest
	if !bindJSON(c, &req) {
		return
	}

	training, err := h.stateService.UpdateTraining(c.Request.Context(), c.Param("teamId"), c.Param("trainingId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, training)
}

// DeleteTraining handles DELETE /teams/:teamId/trainings/:trainingId
// @Summary Move a training to the trash
// @Tags trainings
// @Produce json
// @Param teamId path string true "Team ID"
// @Param trainingId path string true "Training ID"
// @Success 200 {object} models.TrashItem "Created trash item"
// @Success 204 "Team or training does not exist"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/trainings/{trainingId} [delete]
func (h *TrainingHandler) DeleteTraining(c *gin.Context) {
	item, err := h.stateService.DeleteTraining(c.Request.Context(), c.Param("teamId"), c.Param("trainingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, item)
}
