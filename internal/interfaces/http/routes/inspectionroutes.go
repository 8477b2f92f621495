package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers/inspection"
	"mantis/internal/interfaces/http/middleware"
)

// InspectionRouteConfig holds dependencies for inspection routes.
type InspectionRouteConfig struct {
	InspectionHandler *inspection.InspectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupInspectionRoutes configures point inspection routes.
func SetupInspectionRoutes(engine *gin.Engine, cfg *InspectionRouteConfig) {
	inspections := engine.Group("/inspections")
	inspections.Use(cfg.AuthMiddleware.RequireAuth())
	{
		inspections.GET("/summary", cfg.InspectionHandler.GetSummary)
		inspections.POST("", cfg.InspectionHandler.RecordInspection)
	}
}
