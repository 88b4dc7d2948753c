package handlers

import (
	"errors"
	"net/http"

	apperrors "coach-planner-backend/internal/errors"
	"coach-planner-backend/internal/logger"
	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"team not found"`
}

// respondError maps a service error to its HTTP status and writes the error body
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidTrashType),
		errors.Is(err, apperrors.ErrEmptyChatMessage):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsStorageWrite(err):
		c.JSON(http.StatusInsufficientStorage, ErrorResponse{Error: "the change could not be saved: " + err.Error()})
	case apperrors.IsStorageRead(err):
		logger.WithContext(c.Request.Context()).WithError(err).Warn("state backend unreadable, change rejected")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "the change could not be applied, storage is unavailable: " + err.Error()})
	case apperrors.IsGenerationUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: service.GenerationFailedMessage})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindJSON decodes the request body into req, answering 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// respondEntity writes entity with status, or 204 when the target did not exist
func respondEntity[T any](c *gin.Context, status int, entity *T) {
	if entity == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(status, entity)
}
