package inspection

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/inspection/usecases"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

// InspectionHandler serves the point inspection endpoints.
type InspectionHandler struct {
	recordInspectionUseCase usecases.RecordInspectionExecutor
	getSummaryUseCase       usecases.GetInspectionSummaryExecutor
	logger                  logger.Interface
}

func NewInspectionHandler(
	recordInspectionUseCase usecases.RecordInspectionExecutor,
	getSummaryUseCase usecases.GetInspectionSummaryExecutor,
) *InspectionHandler {
	return &InspectionHandler{
		recordInspectionUseCase: recordInspectionUseCase,
		getSummaryUseCase:       getSummaryUseCase,
		logger:                  logger.NewLogger(),
	}
}

func (h *InspectionHandler) RecordInspection(c *gin.Context) {
	var req RecordInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recordInspectionUseCase.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		h.logger.Errorw("failed to record inspection", "asset_id", req.AssetID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inspection recorded successfully")
}

func (h *InspectionHandler) GetSummary(c *gin.Context) {
	query, err := parseSummaryQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSummaryUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to summarize inspections", "asset_id", query.AssetID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspection summary retrieved successfully", result)
}
