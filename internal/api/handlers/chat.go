package handlers

import (
	"net/http"

	"coach-planner-backend/internal/database/models"
	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the assistant conversations saved on a team
type ChatHandler struct {
	stateService     service.StateServiceInterface
	assistantService service.AssistantServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(stateService service.StateServiceInterface, assistantService service.AssistantServiceInterface) *ChatHandler {
	return &ChatHandler{
		stateService:     stateService,
		assistantService: assistantService,
	}
}

// ListChats handles GET /teams/:teamId/chats
// @Summary List saved chats
// @Description Most recently updated first. q filters by title, case-insensitive.
// @Tags chats
// @Produce json
// @Param teamId path string true "Team ID"
// @Param q query string false "Title search"
// @Success 200 {array} models.AIChat "Chats"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{teamId}/chats [get]
func (h *ChatHandler) ListChats(c *gin.Context) {
	chats, err := h.stateService.ListChats(c.Request.Context(), c.Param("teamId"), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// SaveChat handles PUT /teams/:teamId/chats/:chatId
// @Summary Insert or replace a chat
// @Tags chats
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param chatId path string true "Chat ID"
// @Param chat body models.AIChat true "Chat"
// @Success 200 {object} models.AIChat "Saved chat"
// @Success 204 "Team does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/chats/{chatId} [put]
func (h *ChatHandler) SaveChat(c *gin.Context) {
	var chat models.AIChat
	if !bindJSON(c, &chat) {
		return
	}
	chat.ID = c.Param("chatId")

	saved, err := h.stateService.SaveChat(c.Request.Context(), c.Param("teamId"), &chat)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, saved)
}

// DeleteChat handles DELETE /teams/:teamId/chats/:chatId
// @Summary Delete a chat permanently
// @Description Chats never go to the trash. Deleting an unknown chat also answers 204.
// @Tags chats
// @Param teamId path string true "Team ID"
// @Param chatId path string true "Chat ID"
// @Success 204 "Chat removed"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/chats/{chatId} [delete]
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	if _, err := h.stateService.DeleteChat(c.Request.Context(), c.Param("teamId"), c.Param("chatId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SendMessage handles POST /teams/:teamId/chats/messages
// @Summary Ask the assistant
// @Description Sends a message in a new chat (no chatId) or an existing one. Both turns are saved only when the assistant answers.
// @Tags chats
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param request body service.SendMessageRequest true "Message"
// @Success 200 {object} models.AIChat "Chat with the new turns"
// @Failure 400 {object} ErrorResponse "Empty message"
// @Failure 404 {object} ErrorResponse "Team or chat not found"
// @Failure 503 {object} ErrorResponse "Assistant unavailable"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /teams/{teamId}/chats/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req service.SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	chat, err := h.assistantService.SendMessage(c.Request.Context(), c.Param("teamId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}
