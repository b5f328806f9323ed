// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/services"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

type updateSettingsRequest map[string]string

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// DashboardStats handles GET /dashboard/stats
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// ListUsers handles GET /users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.ListUsers(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(users, total, params))
}

// CreateUser handles POST /users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	user, err := h.adminService.CreateUser(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, user)
}

// GetSettings handles GET /settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.adminService.GetSettings()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, settings)
}

// UpdateSettings handles PUT /settings with a flat key/value map. Each pair
// is upserted.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	for key, value := range req {
		if err := h.adminService.UpdateSetting(key, value); err != nil {
			handleServiceError(c, err)
			return
		}
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminSettingsUpdated),
	})
}
