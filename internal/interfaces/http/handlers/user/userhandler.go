package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/user/usecases"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

// UserHandler serves registration, login and profile endpoints.
type UserHandler struct {
	registerUserUseCase     usecases.RegisterUserExecutor
	authenticateUserUseCase usecases.AuthenticateUserExecutor
	getUserUseCase          usecases.GetUserExecutor
	logger                  logger.Interface
}

func NewUserHandler(
	registerUserUseCase usecases.RegisterUserExecutor,
	authenticateUserUseCase usecases.AuthenticateUserExecutor,
	getUserUseCase usecases.GetUserExecutor,
) *UserHandler {
	return &UserHandler{
		registerUserUseCase:     registerUserUseCase,
		authenticateUserUseCase: authenticateUserUseCase,
		getUserUseCase:          getUserUseCase,
		logger:                  logger.NewLogger(),
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUserUseCase.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.logger.Errorw("failed to register user", "username", req.Username, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AuthenticateUserCommand{
		Username: req.Username,
		Password: req.Password,
	}

	result, err := h.authenticateUserUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "username", req.Username, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUseCase.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", result)
}
