package handlers

import (
	"net/http"

	"homehub/internal/models"
	"homehub/internal/store"

	"github.com/gin-gonic/gin"
)

// @Summary      List maintenance tasks
// @Tags         maintenance
// @Produce      json
// @Success      200  {array}  models.MaintenanceTask
// @Router       /api/v1/tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Maintenance.List(c.Request.Context()))
}

// @Summary      Create a maintenance task
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body  models.MaintenanceTask  true  "Task (id ignored)"
// @Success      200   {object}  models.MaintenanceTask
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/tasks [post]
// @Security     BearerAuth
func (h *Handler) addTask(c *gin.Context) {
	var task models.MaintenanceTask
	if ok := h.bindJSONOrBadRequest(c, &task); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Maintenance.Add(c.Request.Context(), task))
}

// @Summary      Update a maintenance task
// @Description  Partial merge; unknown ids are a silent no-op.
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Task id"
// @Param        body  body  store.MaintenanceTaskPatch  true  "Fields to change"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	var patch store.MaintenanceTaskPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	h.services.Maintenance.Update(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete a maintenance task
// @Tags         maintenance
// @Success      204
// @Router       /api/v1/tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	h.services.Maintenance.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary      Complete a maintenance task
// @Description  Stamps completion now and advances the due date by the task's frequency.
// @Tags         maintenance
// @Produce      json
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/tasks/{id}/complete [post]
// @Security     BearerAuth
func (h *Handler) completeTask(c *gin.Context) {
	h.services.Maintenance.Complete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
