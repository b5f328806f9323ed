// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/services"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type CategoryHandler struct {
	productService *services.ProductService
}

func NewCategoryHandler(productService *services.ProductService) *CategoryHandler {
	return &CategoryHandler{
		productService: productService,
	}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// GetCategory handles GET /categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	category, err := h.productService.GetCategory(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	category, err := h.productService.CreateCategory(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, category)
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	category, err := h.productService.UpdateCategory(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteCategory(id); err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCategoryDeleted),
	})
}
