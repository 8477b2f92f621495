package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers/user"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler    *user.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures authentication and user routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.UserHandler.Login)
	}

	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", cfg.UserHandler.GetMe)

		// Account provisioning is an admin operation.
		admin := users.Group("")
		admin.Use(authorization.RequireAdmin())
		{
			admin.POST("", cfg.UserHandler.Register)
		}
	}
}
