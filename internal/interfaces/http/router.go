// Package http assembles the HTTP interface layer: handlers, middleware
// and routes, wired to the application use cases.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	assetUC "mantis/internal/application/asset/usecases"
	inspectionUC "mantis/internal/application/inspection/usecases"
	maintenanceUC "mantis/internal/application/maintenance/usecases"
	sparepartUC "mantis/internal/application/sparepart/usecases"
	userUC "mantis/internal/application/user/usecases"
	workorderUC "mantis/internal/application/workorder/usecases"
	"mantis/internal/domain/shared/events"
	workorderDomain "mantis/internal/domain/workorder"
	"mantis/internal/infrastructure/auth"
	"mantis/internal/infrastructure/config"
	"mantis/internal/infrastructure/repository"
	"mantis/internal/infrastructure/services"
	assetHandlers "mantis/internal/interfaces/http/handlers/asset"
	inspectionHandlers "mantis/internal/interfaces/http/handlers/inspection"
	maintenanceHandlers "mantis/internal/interfaces/http/handlers/maintenance"
	sparepartHandlers "mantis/internal/interfaces/http/handlers/sparepart"
	userHandlers "mantis/internal/interfaces/http/handlers/user"
	workorderHandlers "mantis/internal/interfaces/http/handlers/workorder"
	"mantis/internal/interfaces/http/middleware"
	"mantis/internal/interfaces/http/routes"
	shareddb "mantis/internal/shared/db"
	"mantis/internal/shared/logger"
)

// Router holds the gin engine and the wired handlers.
type Router struct {
	engine            *gin.Engine
	workOrderHandler  *workorderHandlers.WorkOrderHandler
	planHandler       *maintenanceHandlers.PlanHandler
	sparePartHandler  *sparepartHandlers.SparePartHandler
	assetHandler      *assetHandlers.AssetHandler
	inspectionHandler *inspectionHandlers.InspectionHandler
	userHandler       *userHandlers.UserHandler
	authMiddleware    *middleware.AuthMiddleware
	allowedOrigins    []string
}

// NewRouter wires repositories, services and use cases into handlers.
func NewRouter(db *gorm.DB, dispatcher events.EventDispatcher, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	workOrderRepo := repository.NewWorkOrderRepository(db)
	planRepo := repository.NewPlanRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)
	partRepo := repository.NewSparePartRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	codeGenerator := workorderDomain.NewSequentialCodeGenerator(workOrderRepo)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes, cfg.Auth.RefreshExpDays)

	auditRecorder := services.NewAuditRecorder(auditRepo, log)
	if err := auditRecorder.RegisterHandlers(dispatcher); err != nil {
		return nil, err
	}

	workOrderHandler := workorderHandlers.NewWorkOrderHandler(
		workorderUC.NewCreateWorkOrderUseCase(workOrderRepo, assetRepo, codeGenerator, dispatcher, log),
		workorderUC.NewAssignWorkOrderUseCase(workOrderRepo, userRepo, dispatcher, log),
		workorderUC.NewStartWorkOrderUseCase(workOrderRepo, dispatcher, log),
		workorderUC.NewCompleteWorkOrderUseCase(workOrderRepo, dispatcher, log),
		workorderUC.NewCloseWorkOrderUseCase(workOrderRepo, dispatcher, log),
		workorderUC.NewGetWorkOrderUseCase(workOrderRepo, log),
		workorderUC.NewListWorkOrdersUseCase(workOrderRepo, log),
		workorderUC.NewGetWorkOrderStatsUseCase(workOrderRepo, log),
		workorderUC.NewImportWorkOrdersUseCase(workOrderRepo, assetRepo, codeGenerator, dispatcher, log),
	)

	planHandler := maintenanceHandlers.NewPlanHandler(
		maintenanceUC.NewCreatePlanUseCase(planRepo, assetRepo, dispatcher, log),
		maintenanceUC.NewGetPlanUseCase(planRepo, log),
		maintenanceUC.NewListPlansUseCase(planRepo, log),
		maintenanceUC.NewActivatePlanUseCase(planRepo, dispatcher, log),
		maintenanceUC.NewDeactivatePlanUseCase(planRepo, dispatcher, log),
		maintenanceUC.NewEvaluatePlanUseCase(planRepo, log),
		maintenanceUC.NewGenerateWorkOrderUseCase(planRepo, workOrderRepo, codeGenerator, dispatcher, log),
	)

	txManager := shareddb.NewTransactionManager(db)

	sparePartHandler := sparepartHandlers.NewSparePartHandler(
		sparepartUC.NewCreateSparePartUseCase(partRepo, log),
		sparepartUC.NewStockInUseCase(partRepo, txManager, log),
		sparepartUC.NewStockOutUseCase(partRepo, txManager, log),
		sparepartUC.NewAdjustStockUseCase(partRepo, txManager, log),
		sparepartUC.NewListSparePartsUseCase(partRepo, log),
	)

	assetHandler := assetHandlers.NewAssetHandler(
		assetUC.NewCreateAssetUseCase(assetRepo, log),
		assetUC.NewGetAssetUseCase(assetRepo, log),
		assetUC.NewListAssetsUseCase(assetRepo, log),
		assetUC.NewUpdateAssetStatusUseCase(assetRepo, log),
	)

	inspectionHandler := inspectionHandlers.NewInspectionHandler(
		inspectionUC.NewRecordInspectionUseCase(inspectionRepo, assetRepo, log),
		inspectionUC.NewGetInspectionSummaryUseCase(inspectionRepo, log),
	)

	userHandler := userHandlers.NewUserHandler(
		userUC.NewRegisterUserUseCase(userRepo, hasher, log),
		userUC.NewAuthenticateUserUseCase(userRepo, hasher, jwtService, log),
		userUC.NewGetUserUseCase(userRepo, log),
	)

	return &Router{
		engine:            engine,
		workOrderHandler:  workOrderHandler,
		planHandler:       planHandler,
		sparePartHandler:  sparePartHandler,
		assetHandler:      assetHandler,
		inspectionHandler: inspectionHandler,
		userHandler:       userHandler,
		authMiddleware:    middleware.NewAuthMiddleware(jwtService, log),
		allowedOrigins:    cfg.Server.AllowedOrigins,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupAssetRoutes(r.engine, &routes.AssetRouteConfig{
		AssetHandler:   r.assetHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupWorkOrderRoutes(r.engine, &routes.WorkOrderRouteConfig{
		WorkOrderHandler: r.workOrderHandler,
		AuthMiddleware:   r.authMiddleware,
	})
	routes.SetupPlanRoutes(r.engine, &routes.PlanRouteConfig{
		PlanHandler:    r.planHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupSparePartRoutes(r.engine, &routes.SparePartRouteConfig{
		SparePartHandler: r.sparePartHandler,
		AuthMiddleware:   r.authMiddleware,
	})
	routes.SetupInspectionRoutes(r.engine, &routes.InspectionRouteConfig{
		InspectionHandler: r.inspectionHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
