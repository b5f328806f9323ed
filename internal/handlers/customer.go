// internal/handlers/customer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/services"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

// CustomerHandler is the admin-panel surface over customer accounts.
type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	customers, total, err := h.customerService.ListCustomers(params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(customers, total, params))
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, customer)
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, customer)
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, customer)
}

// DeleteCustomer handles DELETE /customers/:id. The account is deactivated,
// not removed.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(id); err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCustomerDeleted),
	})
}
