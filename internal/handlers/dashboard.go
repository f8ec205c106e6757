package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard overview
// @Description  Derived view: current temperature, next-week events, active projects, overdue tasks, upcoming bills, financial summary.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardData
// @Router       /api/v1/dashboard [get]
// @Security     BearerAuth
func (h *Handler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Dashboard.Get(c.Request.Context()))
}

// @Summary      Recompute the dashboard
// @Description  Forces a recompute against the current clock.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardData
// @Router       /api/v1/dashboard/refresh [post]
// @Security     BearerAuth
func (h *Handler) refreshDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Dashboard.Refresh(c.Request.Context()))
}
