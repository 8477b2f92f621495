package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers/sparepart"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/shared/authorization"
)

// SparePartRouteConfig holds dependencies for spare part routes.
type SparePartRouteConfig struct {
	SparePartHandler *sparepart.SparePartHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupSparePartRoutes configures spare part inventory routes.
func SetupSparePartRoutes(engine *gin.Engine, cfg *SparePartRouteConfig) {
	parts := engine.Group("/spare-parts")
	parts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		parts.GET("", cfg.SparePartHandler.ListSpareParts)

		parts.POST("/:id/stock-in", cfg.SparePartHandler.StockIn)
		parts.POST("/:id/stock-out", cfg.SparePartHandler.StockOut)

		// Catalog changes and manual corrections are supervisor operations.
		supervised := parts.Group("")
		supervised.Use(authorization.RequireSupervisor())
		{
			supervised.POST("", cfg.SparePartHandler.CreateSparePart)
			supervised.POST("/:id/adjust", cfg.SparePartHandler.AdjustStock)
		}
	}
}
