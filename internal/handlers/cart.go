// internal/handlers/cart.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/services"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

type addItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// identity resolves the caller's cart identity. An authenticated customer
// takes precedence; otherwise query parameters customer_id / session_id
// supply it, with customer_id winning when both are present.
func (h *CartHandler) identity(c *gin.Context) services.CartIdentity {
	if customerID, ok := utils.GetCustomerIDFromContext(c); ok {
		return services.CartIdentity{CustomerID: &customerID}
	}

	identity := services.CartIdentity{
		SessionID: c.Query("session_id"),
	}
	if raw := c.Query("customer_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			customerID := uint(id)
			identity.CustomerID = &customerID
		}
	}
	return identity
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(h.identity(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}

// AddItem handles POST /cart/add
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(h.identity(c), req.ProductID, req.Quantity)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}

// UpdateItem handles PUT /cart/item/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	cart, err := h.cartService.UpdateItem(h.identity(c), itemID, req.Quantity)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}

// RemoveItem handles DELETE /cart/item/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, ok := parseIDParam(c)
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveItem(h.identity(c), itemID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, cart)
}

// Clear handles DELETE /cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.Clear(h.identity(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}
