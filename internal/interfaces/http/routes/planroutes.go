package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers/maintenance"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/shared/authorization"
)

// PlanRouteConfig holds dependencies for maintenance plan routes.
type PlanRouteConfig struct {
	PlanHandler    *maintenance.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlanRoutes configures maintenance plan routes.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/maintenance-plans")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)
		plans.POST("/:id/evaluate", cfg.PlanHandler.EvaluatePlan)

		// Plan lifecycle and generation are supervisor operations.
		supervised := plans.Group("")
		supervised.Use(authorization.RequireSupervisor())
		{
			supervised.POST("", cfg.PlanHandler.CreatePlan)
			supervised.POST("/:id/activate", cfg.PlanHandler.ActivatePlan)
			supervised.POST("/:id/deactivate", cfg.PlanHandler.DeactivatePlan)
			supervised.POST("/:id/generate-work-order", cfg.PlanHandler.GenerateWorkOrder)
		}
	}
}
