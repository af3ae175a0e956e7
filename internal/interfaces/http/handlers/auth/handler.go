package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type GetCurrentAdminExecutor interface {
	Execute(ctx context.Context, adminID uint) (*usecases.CurrentAdminResult, error)
}

type Handler struct {
	loginUC      LoginExecutor
	currentUC    GetCurrentAdminExecutor
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewHandler(loginUC LoginExecutor, currentUC GetCurrentAdminExecutor, cookieConfig config.CookieConfig) *Handler {
	return &Handler{
		loginUC:      loginUC,
		currentUC:    currentUC,
		cookieConfig: cookieConfig,
		logger:       logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	AdminID   uint      `json:"admin_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

// Login handles POST /auth/login
// @Summary Authenticate an admin
// @Description Issues a session token as an HttpOnly cookie and in the body
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetAccessTokenCookie(c, h.cookieConfig, result.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		AdminID:   result.AdminID,
		Name:      result.Name,
		Email:     result.Email,
		Role:      result.Role,
	})
}

// Logout handles POST /auth/logout
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	utils.ClearAccessTokenCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /auth/me
// @Summary Current authenticated admin
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	if adminID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.currentUC.Execute(c.Request.Context(), adminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
