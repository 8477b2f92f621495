package maintenance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/maintenance/usecases"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC        usecases.CreatePlanExecutor
	getPlanUC           usecases.GetPlanExecutor
	listPlansUC         usecases.ListPlansExecutor
	activatePlanUC      usecases.ActivatePlanExecutor
	deactivatePlanUC    usecases.DeactivatePlanExecutor
	evaluatePlanUC      usecases.EvaluatePlanExecutor
	generateWorkOrderUC usecases.GenerateWorkOrderExecutor
	logger              logger.Interface
}

func NewPlanHandler(
	createPlanUC usecases.CreatePlanExecutor,
	getPlanUC usecases.GetPlanExecutor,
	listPlansUC usecases.ListPlansExecutor,
	activatePlanUC usecases.ActivatePlanExecutor,
	deactivatePlanUC usecases.DeactivatePlanExecutor,
	evaluatePlanUC usecases.EvaluatePlanExecutor,
	generateWorkOrderUC usecases.GenerateWorkOrderExecutor,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:        createPlanUC,
		getPlanUC:           getPlanUC,
		listPlansUC:         listPlansUC,
		activatePlanUC:      activatePlanUC,
		deactivatePlanUC:    deactivatePlanUC,
		evaluatePlanUC:      evaluatePlanUC,
		generateWorkOrderUC: generateWorkOrderUC,
		logger:              logger.NewLogger(),
	}
}

// CreatePlan handles POST /plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.createPlanUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

// GetPlan handles GET /plans/:id
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), usecases.GetPlanQuery{PlanID: planID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlans handles GET /plans
func (h *PlanHandler) ListPlans(c *gin.Context) {
	query := parseListPlansQuery(c)

	result, err := h.listPlansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, result.Page, result.PageSize)
}

// ActivatePlan handles POST /plans/:id/activate
func (h *PlanHandler) ActivatePlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.activatePlanUC.Execute(c.Request.Context(), usecases.ActivatePlanCommand{
		PlanID:      planID,
		ActivatedBy: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan activated successfully", result)
}

// DeactivatePlan handles POST /plans/:id/deactivate
func (h *PlanHandler) DeactivatePlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.deactivatePlanUC.Execute(c.Request.Context(), usecases.DeactivatePlanCommand{
		PlanID:        planID,
		DeactivatedBy: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deactivated successfully", result)
}

// EvaluatePlan handles POST /plans/:id/evaluate
func (h *PlanHandler) EvaluatePlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; an empty evaluation uses the wall clock.
	var req EvaluatePlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.evaluatePlanUC.Execute(c.Request.Context(), usecases.EvaluatePlanQuery{
		PlanID:         planID,
		Date:           req.Date,
		CurrentCounter: req.CurrentCounter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GenerateWorkOrder handles POST /plans/:id/generate-work-order
func (h *PlanHandler) GenerateWorkOrder(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req GenerateWorkOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.generateWorkOrderUC.Execute(c.Request.Context(), usecases.GenerateWorkOrderCommand{
		PlanID:         planID,
		GeneratedBy:    userID,
		CurrentCounter: req.CurrentCounter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Work order generated successfully")
}
