package handlers

import (
	"net/http"

	"homehub/internal/models"
	"homehub/internal/store"

	"github.com/gin-gonic/gin"
)

// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  models.Project
// @Router       /api/v1/projects [get]
// @Security     BearerAuth
func (h *Handler) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Projects.List(c.Request.Context()))
}

// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  models.Project  true  "Project (id ignored)"
// @Success      200   {object}  models.Project
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/projects [post]
// @Security     BearerAuth
func (h *Handler) addProject(c *gin.Context) {
	var project models.Project
	if ok := h.bindJSONOrBadRequest(c, &project); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Projects.Add(c.Request.Context(), project))
}

// @Summary      Update a project
// @Description  Partial merge; unknown ids are a silent no-op.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Project id"
// @Param        body  body  store.ProjectPatch  true  "Fields to change"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	var patch store.ProjectPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	h.services.Projects.Update(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete a project
// @Tags         projects
// @Success      204
// @Router       /api/v1/projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	h.services.Projects.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
