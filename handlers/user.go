package handlers

import (
	"net/http"

	"weddify/models"
	"weddify/services/user"
	"weddify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// RegisterUserHandler handles POST /users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.UserService.Register(req)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// AuthenticateUserHandler handles POST /users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warn("User authentication failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetUserByIDHandler returns the authenticated user's profile.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	usr, err := h.UserService.GetUserByID(idStr)
	if err != nil {
		logger.Error("User not found", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /users/me.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.ID = idStr

	usr, err := h.UserService.UpdateUser(req)
	if err != nil {
		logger.Error("User update failed", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePasswordHandler handles PUT /users/me/password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.UserService.UpdatePassword(idStr, req.CurrentPassword, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// DeleteUserHandler handles DELETE /users/me.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.UserService.DeleteUser(idStr); err != nil {
		logger.Error("User delete failed", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// RevokeUserAuthTokenHandler handles POST /users/logout.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.UserService.RevokeAuthToken(idStr); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// callerID pulls the authenticated subject ID set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	id, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}
