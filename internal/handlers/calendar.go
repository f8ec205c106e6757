package handlers

import (
	"net/http"

	"homehub/internal/models"
	"homehub/internal/store"

	"github.com/gin-gonic/gin"
)

// @Summary      List calendar events
// @Tags         calendar
// @Produce      json
// @Success      200  {array}  models.CalendarEvent
// @Router       /api/v1/events [get]
// @Security     BearerAuth
func (h *Handler) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Calendar.List(c.Request.Context()))
}

// @Summary      Create a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        body  body  models.CalendarEvent  true  "Event (id ignored)"
// @Success      200   {object}  models.CalendarEvent
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/events [post]
// @Security     BearerAuth
func (h *Handler) addEvent(c *gin.Context) {
	var event models.CalendarEvent
	if ok := h.bindJSONOrBadRequest(c, &event); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Calendar.Add(c.Request.Context(), event))
}

// @Summary      Update a calendar event
// @Description  Partial merge; unknown ids are a silent no-op.
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Event id"
// @Param        body  body  store.CalendarEventPatch  true  "Fields to change"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/events/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateEvent(c *gin.Context) {
	var patch store.CalendarEventPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	h.services.Calendar.Update(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete a calendar event
// @Tags         calendar
// @Success      204
// @Router       /api/v1/events/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteEvent(c *gin.Context) {
	h.services.Calendar.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
