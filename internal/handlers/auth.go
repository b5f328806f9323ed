// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/services"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	customer, err := h.authService.Register(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, customer)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	resp, err := h.authService.AdminLogin(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// ForgotPassword handles POST /auth/forgot-password. The response is the
// same whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req services.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := h.authService.ForgotPassword(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthPasswordForgot),
	})
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req services.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthPasswordReset),
	})
}

// VerifyEmail handles GET /auth/verify-email/:token
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.authService.VerifyEmail(c.Param("token")); err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthEmailVerified),
	})
}

// Me handles GET /auth/me for the authenticated customer.
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := utils.GetPrincipalEmailFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	customer, err := h.authService.GetCustomerByEmail(email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, customer)
}

// UpdateProfile handles PUT /auth/profile for the authenticated customer.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	email, ok := utils.GetPrincipalEmailFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	customer, err := h.authService.UpdateProfile(email, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, customer)
}
