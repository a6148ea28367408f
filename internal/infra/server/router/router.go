// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rental-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/rental-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	propertyController    *controller.PropertyController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	reportController      *controller.ReportController
	exportRateLimiter     *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	requestRecorder       middleware.RequestRecorder
	metricsHandler        http.Handler
	metricsPath           string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	propertyController *controller.PropertyController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	exportRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		propertyController:    propertyController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		reportController:      reportController,
		exportRateLimiter:     exportRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// WithMetrics records request durations with recorder and serves handler on path.
func (r *Router) WithMetrics(recorder middleware.RequestRecorder, handler http.Handler, path string) *Router {
	r.requestRecorder = recorder
	r.metricsHandler = handler
	r.metricsPath = path
	return r
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	if r.requestRecorder != nil {
		r.engine.Use(middleware.Metrics(r.requestRecorder))
	}

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil && r.metricsPath != "" {
		r.engine.GET(r.metricsPath, gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	if r.propertyController != nil {
		properties := v1.Group("/properties")
		{
			properties.GET("", r.propertyController.List)
			properties.POST("", r.propertyController.Create)
			properties.GET("/selection", r.propertyController.GetSelection)
			properties.PUT("/selection", r.propertyController.SetSelection)
			properties.GET("/selection/events", r.propertyController.SelectionEvents)
		}
	}

	if r.transactionController != nil {
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}

	if r.dashboardController != nil {
		v1.GET("/dashboard", r.dashboardController.Get)
	}

	if r.reportController != nil {
		reports := v1.Group("/reports")
		exportHandlers := []gin.HandlerFunc{}
		if r.exportRateLimiter != nil {
			exportHandlers = append(exportHandlers, r.exportRateLimiter.Middleware())
		}
		{
			reports.POST("", r.reportController.Generate)
			reports.GET("/export", append(exportHandlers, r.reportController.Export)...)
			reports.GET("/:id/export", append(exportHandlers, r.reportController.ExportSnapshot)...)
		}
	}
}
