package handlers

import (
	"homehub/internal/hub"
	"homehub/internal/logger"
	"homehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, the broadcast hub, and logging.
type Handler struct {
	services *service.Service
	hub      *hub.Hub
	log      *logger.Logger

	// Threat refresh location, from config.
	lat float64
	lon float64
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, h *hub.Hub, log *logger.Logger, lat, lon float64) *Handler {
	return &Handler{services: services, hub: h, log: log, lat: lat, lon: lon}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health and Prometheus endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket listener channel (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerClimateRoutes(api)
		h.registerProjectRoutes(api)
		h.registerMaintenanceRoutes(api)
		h.registerBillRoutes(api)
		h.registerCalendarRoutes(api)
		h.registerSceneRoutes(api)
		h.registerThreatRoutes(api)
		h.registerDashboardRoutes(api)
	}
}

func (h *Handler) registerClimateRoutes(api *gin.RouterGroup) {
	readings := api.Group("/readings")
	{
		readings.GET("/", h.listReadings)
		readings.POST("/", h.addReading)
	}
	schedules := api.Group("/schedules")
	{
		schedules.GET("/", h.listSchedules)
		schedules.POST("/", h.addSchedule)
		schedules.PUT("/:id", h.updateSchedule)
		schedules.DELETE("/:id", h.deleteSchedule)
	}
}

func (h *Handler) registerProjectRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	{
		projects.GET("/", h.listProjects)
		projects.POST("/", h.addProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}
}

func (h *Handler) registerMaintenanceRoutes(api *gin.RouterGroup) {
	tasks := api.Group("/tasks")
	{
		tasks.GET("/", h.listTasks)
		tasks.POST("/", h.addTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
		tasks.POST("/:id/complete", h.completeTask)
	}
}

func (h *Handler) registerBillRoutes(api *gin.RouterGroup) {
	bills := api.Group("/bills")
	{
		bills.GET("/", h.listBills)
		bills.POST("/", h.addBill)
		bills.PUT("/:id", h.updateBill)
		bills.DELETE("/:id", h.deleteBill)
		bills.POST("/:id/pay", h.payBill)
	}
}

func (h *Handler) registerCalendarRoutes(api *gin.RouterGroup) {
	events := api.Group("/events")
	{
		events.GET("/", h.listEvents)
		events.POST("/", h.addEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}
}

func (h *Handler) registerSceneRoutes(api *gin.RouterGroup) {
	scenes := api.Group("/scenes")
	{
		scenes.GET("/", h.listScenes)
		scenes.POST("/", h.createScene)
		scenes.PUT("/:id", h.updateScene)
		scenes.DELETE("/:id", h.deleteScene)
		scenes.POST("/:id/activate", h.activateScene)
	}
}

func (h *Handler) registerThreatRoutes(api *gin.RouterGroup) {
	threats := api.Group("/threats")
	{
		threats.GET("/", h.listThreats)
		threats.POST("/refresh", h.refreshThreats)
	}
}

func (h *Handler) registerDashboardRoutes(api *gin.RouterGroup) {
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/", h.getDashboard)
		dashboard.POST("/refresh", h.refreshDashboard)
	}
}
