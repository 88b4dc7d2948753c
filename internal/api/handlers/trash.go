package handlers

import (
	"encoding/json"
	"net/http"

	"coach-planner-backend/internal/database/models"
	"coach-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TrashHandler handles the recycle bin
type TrashHandler struct {
	stateService service.StateServiceInterface
}

// NewTrashHandler creates a new trash handler
func NewTrashHandler(stateService service.StateServiceInterface) *TrashHandler {
	return &TrashHandler{
		stateService: stateService,
	}
}

// TrashListEntry is a trash item with its display headline
type TrashListEntry struct {
	models.TrashItem
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// MarshalJSON flattens the persisted item layout and the display fields into one object
func (e TrashListEntry) MarshalJSON() ([]byte, error) {
	item, err := e.TrashItem.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return appendFields(item, map[string]string{"title": e.Title, "subtitle": e.Subtitle})
}

func appendFields(object []byte, fields map[string]string) ([]byte, error) {
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(object, &merged); err != nil {
		return nil, err
	}
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		merged[k] = b
	}
	return json.Marshal(merged)
}

// ListTrash handles GET /trash
// @Summary List trash items
// @Description Items in deletion order, each with the persisted layout plus a title and subtitle
// @Tags trash
// @Produce json
// @Success 200 {array} TrashListEntry "Trash items"
// @Router /trash [get]
func (h *TrashHandler) ListTrash(c *gin.Context) {
	items, err := h.stateService.ListTrash(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	entries := make([]TrashListEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, TrashListEntry{TrashItem: item, Title: item.Title(), Subtitle: item.Subtitle()})
	}
	c.JSON(http.StatusOK, entries)
}

// TrashEntity handles POST /trash
// @Summary Move any entity to the trash
// @Description Finds the owning team of a player, training or match by scanning every team
// @Tags trash
// @Accept json
// @Produce json
// @Param request body service.TrashEntityRequest true "Entity type and id"
// @Success 200 {object} models.TrashItem "Created trash item"
// @Success 204 "Entity does not exist"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /trash [post]
func (h *TrashHandler) TrashEntity(c *gin.Context) {
	var req service.TrashEntityRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.stateService.TrashEntity(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, item)
}

// ClearTrash handles DELETE /trash
// @Summary Empty the trash
// @Tags trash
// @Success 204 "Trash emptied"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /trash [delete]
func (h *TrashHandler) ClearTrash(c *gin.Context) {
	if err := h.stateService.ClearTrash(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreItem handles POST /trash/:itemId/restore
// @Summary Restore a trash item
// @Description Teams come back as a whole. A child whose team no longer exists is only dropped from the trash (restored=false).
// @Tags trash
// @Produce json
// @Param itemId path string true "Trash item ID"
// @Success 200 {object} service.RestoreResult "Restore outcome"
// @Success 204 "Item does not exist"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /trash/{itemId}/restore [post]
func (h *TrashHandler) RestoreItem(c *gin.Context) {
	result, err := h.stateService.RestoreTrashItem(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondEntity(c, http.StatusOK, result)
}

// DeleteItem handles DELETE /trash/:itemId
// @Summary Delete a trash item permanently
// @Tags trash
// @Param itemId path string true "Trash item ID"
// @Success 204 "Item removed"
// @Failure 507 {object} ErrorResponse "State could not be saved"
// @Router /trash/{itemId} [delete]
func (h *TrashHandler) DeleteItem(c *gin.Context) {
	if _, err := h.stateService.PermanentDelete(c.Request.Context(), c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
