package sparepart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/sparepart/usecases"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

// SparePartHandler serves the spare part inventory endpoints.
type SparePartHandler struct {
	createSparePartUseCase usecases.CreateSparePartExecutor
	stockInUseCase         usecases.StockInExecutor
	stockOutUseCase        usecases.StockOutExecutor
	adjustStockUseCase     usecases.AdjustStockExecutor
	listSparePartsUseCase  usecases.ListSparePartsExecutor
	logger                 logger.Interface
}

func NewSparePartHandler(
	createSparePartUseCase usecases.CreateSparePartExecutor,
	stockInUseCase usecases.StockInExecutor,
	stockOutUseCase usecases.StockOutExecutor,
	adjustStockUseCase usecases.AdjustStockExecutor,
	listSparePartsUseCase usecases.ListSparePartsExecutor,
) *SparePartHandler {
	return &SparePartHandler{
		createSparePartUseCase: createSparePartUseCase,
		stockInUseCase:         stockInUseCase,
		stockOutUseCase:        stockOutUseCase,
		adjustStockUseCase:     adjustStockUseCase,
		listSparePartsUseCase:  listSparePartsUseCase,
		logger:                 logger.NewLogger(),
	}
}

func (h *SparePartHandler) CreateSparePart(c *gin.Context) {
	var req CreateSparePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createSparePartUseCase.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.logger.Errorw("failed to create spare part", "code", req.Code, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Spare part created successfully")
}

func (h *SparePartHandler) StockIn(c *gin.Context) {
	partID, err := parsePartID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.StockInCommand{
		PartID:      partID,
		Quantity:    req.Quantity,
		Reason:      req.Reason,
		PerformedBy: userID,
	}

	result, err := h.stockInUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to stock in", "part_id", partID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stock received successfully", result)
}

func (h *SparePartHandler) StockOut(c *gin.Context) {
	partID, err := parsePartID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.StockOutCommand{
		PartID:      partID,
		Quantity:    req.Quantity,
		WorkOrderID: req.WorkOrderID,
		Reason:      req.Reason,
		PerformedBy: userID,
	}

	result, err := h.stockOutUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to stock out", "part_id", partID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stock issued successfully", result)
}

func (h *SparePartHandler) AdjustStock(c *gin.Context) {
	partID, err := parsePartID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AdjustStockCommand{
		PartID:      partID,
		NewQuantity: req.NewQuantity,
		Reason:      req.Reason,
		PerformedBy: userID,
	}

	result, err := h.adjustStockUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to adjust stock", "part_id", partID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stock adjusted successfully", result)
}

func (h *SparePartHandler) ListSpareParts(c *gin.Context) {
	query := parseListSparePartsQuery(c)

	result, err := h.listSparePartsUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list spare parts", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Parts, result.Total, result.Page, result.PageSize)
}
