// internal/services/customer_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

// CustomerService is the admin-panel surface over customer accounts.
// Self-service registration and profile edits live in AuthService.
type CustomerService struct {
	db *gorm.DB
}

type CreateCustomerRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Username   string `json:"username" validate:"required,username"`
	Password   string `json:"password" validate:"required"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
	IsVerified *bool  `json:"is_verified,omitempty"`
}

type UpdateCustomerRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	Country    *string `json:"country,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	IsVerified *bool   `json:"is_verified,omitempty"`
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{
		db: db,
	}
}

func (s *CustomerService) ListCustomers(params utils.PaginationParams) ([]models.Customer, int64, error) {
	query := s.db.Model(&models.Customer{})

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("email LIKE ? OR username LIKE ? OR name LIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "email", "username", "name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return customers, total, nil
}

func (s *CustomerService) GetCustomer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) CreateCustomer(req *CreateCustomerRequest) (*models.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.Customer
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	customer := &models.Customer{
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		Country:  req.Country,
		IsActive: true,
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	if req.IsVerified != nil {
		customer.IsVerified = *req.IsVerified
	}

	if err := customer.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) UpdateCustomer(id uint, req *UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsVerified != nil {
		updates["is_verified"] = *req.IsVerified
	}

	if len(updates) > 0 {
		if err := s.db.Model(customer).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
	}

	return customer, nil
}

// DeleteCustomer soft-disables the account. Principals are never
// hard-deleted; orders and carts keep referencing them.
func (s *CustomerService) DeleteCustomer(id uint) error {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}

	if err := s.db.Model(customer).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}

	return nil
}
