package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/supamart/pos-api/internal/application/service"
	"github.com/supamart/pos-api/internal/presentation/http/dto/request"
	"github.com/supamart/pos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles login, token refresh and self-service profile routes
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// RefreshToken handles POST /api/v1/users/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Refresh token is required")
		return
	}

	tokens, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", tokens)
}

// Me handles GET /api/v1/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetCurrentUser(c.Request.Context(), getUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", user)
}

// UpdateMe handles PATCH /api/v1/users/updateMe
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), getUserID(c), &service.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
		Photo: req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated", user)
}

// UpdateMyPassword handles PATCH /api/v1/users/updateMyPassword
func (h *AuthHandler) UpdateMyPassword(c *gin.Context) {
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Current and new password are required")
		return
	}

	tokens, err := h.authService.ChangePassword(c.Request.Context(), getUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password updated", tokens)
}
