package handlers

import (
	"errors"
	"net/http"

	"homehub/internal/models"
	"homehub/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List lighting scenes
// @Tags         scenes
// @Produce      json
// @Success      200  {array}  models.LightingScene
// @Router       /api/v1/scenes [get]
// @Security     BearerAuth
func (h *Handler) listScenes(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Scenes.List(c.Request.Context()))
}

// @Summary      Create a lighting scene
// @Tags         scenes
// @Accept       json
// @Produce      json
// @Param        body  body  models.LightingScene  true  "Scene (id ignored)"
// @Success      200   {object}  models.LightingScene
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/scenes [post]
// @Security     BearerAuth
func (h *Handler) createScene(c *gin.Context) {
	var scene models.LightingScene
	if ok := h.bindJSONOrBadRequest(c, &scene); !ok {
		return
	}
	created, err := h.services.Scenes.Create(c.Request.Context(), scene)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to save scene", "scene_create_failed", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary      Update a lighting scene
// @Description  Partial merge. 404 when the id is unknown.
// @Tags         scenes
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Scene id"
// @Param        body  body  service.ScenePatch  true  "Fields to change"
// @Success      200   {object}  models.LightingScene
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/scenes/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateScene(c *gin.Context) {
	var patch service.ScenePatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	updated, err := h.services.Scenes.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, service.ErrSceneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSceneNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to save scene", "scene_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a lighting scene
// @Description  Always answers 204; deletes the scene if it exists.
// @Tags         scenes
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/scenes/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteScene(c *gin.Context) {
	if err := h.services.Scenes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to save scene", "scene_delete_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Activate a lighting scene
// @Description  Pushes {"type":"SCENE_UPDATE","scene":{...}} to every connected listener.
// @Tags         scenes
// @Produce      json
// @Param        id  path  string  true  "Scene id"
// @Success      200  {object}  map[string]interface{}  "status, listeners"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/scenes/{id}/activate [post]
// @Security     BearerAuth
func (h *Handler) activateScene(c *gin.Context) {
	_, listeners, err := h.services.Scenes.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSceneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSceneNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to activate scene", "scene_activate_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusActivated, "listeners": listeners})
}
