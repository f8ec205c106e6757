package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      Threat summary history
// @Description  Newest first, capped at the 10 most recent summaries.
// @Tags         threats
// @Produce      json
// @Success      200  {array}  models.ThreatSummary
// @Router       /api/v1/threats [get]
// @Security     BearerAuth
func (h *Handler) listThreats(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Threats.History(c.Request.Context()))
}

// @Summary      Refresh the threat summary
// @Description  Queries the weather, crime, and outage feeds for the configured location. Optional lat/lon query params override it.
// @Tags         threats
// @Produce      json
// @Param        lat  query  number  false  "Latitude override"
// @Param        lon  query  number  false  "Longitude override"
// @Success      200  {object}  models.ThreatSummary
// @Router       /api/v1/threats/refresh [post]
// @Security     BearerAuth
func (h *Handler) refreshThreats(c *gin.Context) {
	lat, lon := h.lat, h.lon
	if qs := c.Query("lat"); qs != "" {
		if v, err := strconv.ParseFloat(qs, 64); err == nil {
			lat = v
		}
	}
	if qs := c.Query("lon"); qs != "" {
		if v, err := strconv.ParseFloat(qs, 64); err == nil {
			lon = v
		}
	}
	c.JSON(http.StatusOK, h.services.Threats.Refresh(c.Request.Context(), lat, lon))
}
