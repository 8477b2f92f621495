package asset

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/asset/usecases"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

// AssetHandler serves the equipment registry endpoints.
type AssetHandler struct {
	createAssetUseCase       usecases.CreateAssetExecutor
	getAssetUseCase          usecases.GetAssetExecutor
	listAssetsUseCase        usecases.ListAssetsExecutor
	updateAssetStatusUseCase usecases.UpdateAssetStatusExecutor
	logger                   logger.Interface
}

func NewAssetHandler(
	createAssetUseCase usecases.CreateAssetExecutor,
	getAssetUseCase usecases.GetAssetExecutor,
	listAssetsUseCase usecases.ListAssetsExecutor,
	updateAssetStatusUseCase usecases.UpdateAssetStatusExecutor,
) *AssetHandler {
	return &AssetHandler{
		createAssetUseCase:       createAssetUseCase,
		getAssetUseCase:          getAssetUseCase,
		listAssetsUseCase:        listAssetsUseCase,
		updateAssetStatusUseCase: updateAssetStatusUseCase,
		logger:                   logger.NewLogger(),
	}
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createAssetUseCase.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		h.logger.Errorw("failed to create asset", "code", req.Code, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset created successfully")
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := parseAssetID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAssetUseCase.Execute(c.Request.Context(), usecases.GetAssetQuery{AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset retrieved successfully", result)
}

func (h *AssetHandler) GetAssetByCode(c *gin.Context) {
	result, err := h.getAssetUseCase.Execute(c.Request.Context(), usecases.GetAssetQuery{Code: c.Param("code")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset retrieved successfully", result)
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	query := parseListAssetsQuery(c)

	result, err := h.listAssetsUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		h.logger.Errorw("failed to list assets", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assets, result.Total, result.Page, result.PageSize)
}

func (h *AssetHandler) UpdateAssetStatus(c *gin.Context) {
	assetID, err := parseAssetID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateAssetStatusCommand{
		AssetID:   assetID,
		Status:    req.Status,
		UpdatedBy: userID,
	}

	result, err := h.updateAssetStatusUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to update asset status", "asset_id", assetID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset status updated successfully", result)
}
