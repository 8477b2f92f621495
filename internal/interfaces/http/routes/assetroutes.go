package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers/asset"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/shared/authorization"
)

// AssetRouteConfig holds dependencies for asset routes.
type AssetRouteConfig struct {
	AssetHandler   *asset.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAssetRoutes configures equipment registry routes.
func SetupAssetRoutes(engine *gin.Engine, cfg *AssetRouteConfig) {
	assets := engine.Group("/assets")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.GET("", cfg.AssetHandler.ListAssets)
		assets.GET("/code/:code", cfg.AssetHandler.GetAssetByCode)
		assets.GET("/:id", cfg.AssetHandler.GetAsset)

		// Registry changes are supervisor operations.
		supervised := assets.Group("")
		supervised.Use(authorization.RequireSupervisor())
		{
			supervised.POST("", cfg.AssetHandler.CreateAsset)
			supervised.PATCH("/:id/status", cfg.AssetHandler.UpdateAssetStatus)
		}
	}
}
