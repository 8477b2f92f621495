package routes

import (
	"github.com/gin-gonic/gin"

	"mantis/internal/interfaces/http/handlers/workorder"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/shared/authorization"
)

// WorkOrderRouteConfig holds dependencies for work order routes.
type WorkOrderRouteConfig struct {
	WorkOrderHandler *workorder.WorkOrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupWorkOrderRoutes configures work order routes.
func SetupWorkOrderRoutes(engine *gin.Engine, cfg *WorkOrderRouteConfig) {
	workOrders := engine.Group("/work-orders")
	workOrders.Use(cfg.AuthMiddleware.RequireAuth())
	{
		workOrders.GET("", cfg.WorkOrderHandler.ListWorkOrders)
		workOrders.GET("/stats", cfg.WorkOrderHandler.GetStats)
		workOrders.GET("/code/:code", cfg.WorkOrderHandler.GetWorkOrderByCode)
		workOrders.GET("/:id", cfg.WorkOrderHandler.GetWorkOrder)

		workOrders.POST("", cfg.WorkOrderHandler.CreateWorkOrder)
		workOrders.POST("/:id/start", cfg.WorkOrderHandler.StartWorkOrder)
		workOrders.POST("/:id/complete", cfg.WorkOrderHandler.CompleteWorkOrder)

		// Assignment, closure and bulk import are supervisor operations.
		supervised := workOrders.Group("")
		supervised.Use(authorization.RequireSupervisor())
		{
			supervised.POST("/import", cfg.WorkOrderHandler.ImportWorkOrders)
			supervised.POST("/:id/assign", cfg.WorkOrderHandler.AssignWorkOrder)
			supervised.POST("/:id/close", cfg.WorkOrderHandler.CloseWorkOrder)
		}
	}
}
