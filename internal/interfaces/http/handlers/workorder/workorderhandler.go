package workorder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/workorder/usecases"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

type WorkOrderHandler struct {
	createWorkOrderUC   usecases.CreateWorkOrderExecutor
	assignWorkOrderUC   usecases.AssignWorkOrderExecutor
	startWorkOrderUC    usecases.StartWorkOrderExecutor
	completeWorkOrderUC usecases.CompleteWorkOrderExecutor
	closeWorkOrderUC    usecases.CloseWorkOrderExecutor
	getWorkOrderUC      usecases.GetWorkOrderExecutor
	listWorkOrdersUC    usecases.ListWorkOrdersExecutor
	getStatsUC          usecases.GetWorkOrderStatsExecutor
	importWorkOrdersUC  usecases.ImportWorkOrdersExecutor
	logger              logger.Interface
}

func NewWorkOrderHandler(
	createWorkOrderUC usecases.CreateWorkOrderExecutor,
	assignWorkOrderUC usecases.AssignWorkOrderExecutor,
	startWorkOrderUC usecases.StartWorkOrderExecutor,
	completeWorkOrderUC usecases.CompleteWorkOrderExecutor,
	closeWorkOrderUC usecases.CloseWorkOrderExecutor,
	getWorkOrderUC usecases.GetWorkOrderExecutor,
	listWorkOrdersUC usecases.ListWorkOrdersExecutor,
	getStatsUC usecases.GetWorkOrderStatsExecutor,
	importWorkOrdersUC usecases.ImportWorkOrdersExecutor,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		createWorkOrderUC:   createWorkOrderUC,
		assignWorkOrderUC:   assignWorkOrderUC,
		startWorkOrderUC:    startWorkOrderUC,
		completeWorkOrderUC: completeWorkOrderUC,
		closeWorkOrderUC:    closeWorkOrderUC,
		getWorkOrderUC:      getWorkOrderUC,
		listWorkOrdersUC:    listWorkOrdersUC,
		getStatsUC:          getStatsUC,
		importWorkOrdersUC:  importWorkOrdersUC,
		logger:              logger.NewLogger(),
	}
}

// CreateWorkOrder handles POST /work-orders
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create work order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd := req.ToCommand(userID)

	result, err := h.createWorkOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Work order created successfully")
}

// GetWorkOrder handles GET /work-orders/:id
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getWorkOrderUC.Execute(c.Request.Context(), usecases.GetWorkOrderQuery{
		WorkOrderID: workOrderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetWorkOrderByCode handles GET /work-orders/code/:code
func (h *WorkOrderHandler) GetWorkOrderByCode(c *gin.Context) {
	result, err := h.getWorkOrderUC.Execute(c.Request.Context(), usecases.GetWorkOrderQuery{
		Code: c.Param("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListWorkOrders handles GET /work-orders
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	query := parseListWorkOrdersQuery(c)

	result, err := h.listWorkOrdersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.WorkOrders, result.Total, result.Page, result.PageSize)
}

// GetStats handles GET /work-orders/stats
func (h *WorkOrderHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetWorkOrderStatsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignWorkOrder handles POST /work-orders/:id/assign
func (h *WorkOrderHandler) AssignWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.assignWorkOrderUC.Execute(c.Request.Context(), usecases.AssignWorkOrderCommand{
		WorkOrderID: workOrderID,
		AssigneeID:  req.AssigneeID,
		AssignedBy:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order assigned successfully", result)
}

// StartWorkOrder handles POST /work-orders/:id/start
func (h *WorkOrderHandler) StartWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.startWorkOrderUC.Execute(c.Request.Context(), usecases.StartWorkOrderCommand{
		WorkOrderID: workOrderID,
		StartedBy:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order started successfully", result)
}

// CompleteWorkOrder handles POST /work-orders/:id/complete
func (h *WorkOrderHandler) CompleteWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for complete work order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.completeWorkOrderUC.Execute(c.Request.Context(), usecases.CompleteWorkOrderCommand{
		WorkOrderID:     workOrderID,
		CompletedBy:     userID,
		ActionsTaken:    req.ActionsTaken,
		RootCause:       req.RootCause,
		FailureCode:     req.FailureCode,
		DowntimeMinutes: req.DowntimeMinutes,
		LaborHours:      req.LaborHours,
		PartsCost:       req.PartsCost,
		Notes:           req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order completed successfully", result)
}

// CloseWorkOrder handles POST /work-orders/:id/close
func (h *WorkOrderHandler) CloseWorkOrder(c *gin.Context) {
	workOrderID, err := parseWorkOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.closeWorkOrderUC.Execute(c.Request.Context(), usecases.CloseWorkOrderCommand{
		WorkOrderID: workOrderID,
		ClosedBy:    userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order closed successfully", result)
}

// ImportWorkOrders handles POST /work-orders/import
func (h *WorkOrderHandler) ImportWorkOrders(c *gin.Context) {
	var req ImportWorkOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for import work orders", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.importWorkOrdersUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import finished", result)
}
