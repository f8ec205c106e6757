package handlers

import (
	"net/http"

	"homehub/internal/models"
	"homehub/internal/store"

	"github.com/gin-gonic/gin"
)

// @Summary      List temperature readings
// @Tags         climate
// @Produce      json
// @Success      200  {array}  models.TemperatureReading
// @Router       /api/v1/readings [get]
// @Security     BearerAuth
func (h *Handler) listReadings(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Climate.Readings(c.Request.Context()))
}

// @Summary      Record a temperature reading
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  models.TemperatureReading  true  "Reading (id ignored)"
// @Success      200   {object}  models.TemperatureReading
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/readings [post]
// @Security     BearerAuth
func (h *Handler) addReading(c *gin.Context) {
	var reading models.TemperatureReading
	if ok := h.bindJSONOrBadRequest(c, &reading); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Climate.AddReading(c.Request.Context(), reading))
}

// @Summary      List climate schedules
// @Tags         climate
// @Produce      json
// @Success      200  {array}  models.ClimateSchedule
// @Router       /api/v1/schedules [get]
// @Security     BearerAuth
func (h *Handler) listSchedules(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Climate.Schedules(c.Request.Context()))
}

// @Summary      Create a climate schedule
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  models.ClimateSchedule  true  "Schedule (id ignored)"
// @Success      200   {object}  models.ClimateSchedule
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/schedules [post]
// @Security     BearerAuth
func (h *Handler) addSchedule(c *gin.Context) {
	var schedule models.ClimateSchedule
	if ok := h.bindJSONOrBadRequest(c, &schedule); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Climate.AddSchedule(c.Request.Context(), schedule))
}

// @Summary      Update a climate schedule
// @Description  Partial merge; unknown ids are a silent no-op.
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "Schedule id"
// @Param        body  body  store.ClimateSchedulePatch  true  "Fields to change"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/schedules/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateSchedule(c *gin.Context) {
	var patch store.ClimateSchedulePatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	h.services.Climate.UpdateSchedule(c.Request.Context(), c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete a climate schedule
// @Tags         climate
// @Success      204
// @Router       /api/v1/schedules/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteSchedule(c *gin.Context) {
	h.services.Climate.DeleteSchedule(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
