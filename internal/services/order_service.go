// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type CreateOrderRequest struct {
	OrderNumber   string  `json:"order_number,omitempty"`
	CustomerName  string  `json:"customer_name" validate:"required,max=255"`
	CustomerEmail string  `json:"customer_email,omitempty" validate:"omitempty,email"`
	TotalAmount   float64 `json:"total_amount" validate:"min=0"`
	Status        string  `json:"status,omitempty"`
}

type UpdateOrderRequest struct {
	CustomerName  *string  `json:"customer_name,omitempty" validate:"omitempty,max=255"`
	CustomerEmail *string  `json:"customer_email,omitempty" validate:"omitempty,email"`
	TotalAmount   *float64 `json:"total_amount,omitempty" validate:"omitempty,min=0"`
	Status        *string  `json:"status,omitempty"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db: db,
	}
}

func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("order_number LIKE ? OR customer_name LIKE ? OR customer_email LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "order_number", "total_amount", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = utils.GenerateOrderNumber()
	}

	status := models.OrderStatusPending
	if req.Status != "" {
		status = models.OrderStatus(req.Status)
	}

	order := &models.Order{
		OrderNumber:   orderNumber,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		TotalAmount:   req.TotalAmount,
		Status:        status,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// UpdateOrder mutates display fields and status; the order number is frozen
// at creation.
func (s *OrderService) UpdateOrder(id uint, req *UpdateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		updates["customer_email"] = *req.CustomerEmail
	}
	if req.TotalAmount != nil {
		updates["total_amount"] = *req.TotalAmount
	}
	if req.Status != nil {
		updates["status"] = models.OrderStatus(*req.Status)
	}

	if len(updates) > 0 {
		if err := s.db.Model(order).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}

	return order, nil
}

func (s *OrderService) DeleteOrder(id uint) error {
	order, err := s.GetOrder(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(order).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
