package handlers

import (
	"net/http"

	"eventra/middleware"
	"eventra/models"
	"eventra/services/user"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Info("Registration failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	u, err := h.Service.GetUserByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.UserUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.Service.UpdateUser(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAccountHandler handles DELETE /api/auth/profile.
func (h *AuthHandler) DeleteAccountHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	if err := h.Service.DeleteAccount(c.Request.Context(), userID); err != nil {
		getLogger(c).Error("Account deletion failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account and all associated data deleted successfully"})
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context(), middleware.UserID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
