// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name           string                 `json:"name" validate:"required,max=255"`
	Description    string                 `json:"description,omitempty"`
	Price          float64                `json:"price" validate:"min=0"`
	Stock          int                    `json:"stock" validate:"min=0"`
	Category       string                 `json:"category,omitempty"`
	SKU            string                 `json:"sku,omitempty"`
	Brand          string                 `json:"brand,omitempty"`
	Model          string                 `json:"model,omitempty"`
	ImageURL       string                 `json:"image_url,omitempty"`
	Thumbnail      string                 `json:"thumbnail,omitempty"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
	Features       string                 `json:"features,omitempty"`
	IsActive       *bool                  `json:"is_active,omitempty"`
}

// UpdateProductRequest carries the allow-listed mutable fields; nil means
// leave the stored value alone.
type UpdateProductRequest struct {
	Name           *string                `json:"name,omitempty" validate:"omitempty,max=255"`
	Description    *string                `json:"description,omitempty"`
	Price          *float64               `json:"price,omitempty" validate:"omitempty,min=0"`
	Stock          *int                   `json:"stock,omitempty" validate:"omitempty,min=0"`
	Category       *string                `json:"category,omitempty"`
	SKU            *string                `json:"sku,omitempty"`
	Brand          *string                `json:"brand,omitempty"`
	Model          *string                `json:"model,omitempty"`
	ImageURL       *string                `json:"image_url,omitempty"`
	Thumbnail      *string                `json:"thumbnail,omitempty"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
	Features       *string                `json:"features,omitempty"`
	IsActive       *bool                  `json:"is_active,omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		db: db,
	}
}

func (s *ProductService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("name LIKE ? OR sku LIKE ? OR brand LIKE ?", searchTerm, searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "stock", "category"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
		Category:       req.Category,
		Brand:          req.Brand,
		Model:          req.Model,
		ImageURL:       req.ImageURL,
		Thumbnail:      req.Thumbnail,
		Specifications: models.JSONB(req.Specifications),
		Features:       req.Features,
		IsActive:       true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	// An omitted SKU stays NULL so SKU-less products never collide on the
	// unique index.
	if req.SKU != "" {
		sku := req.SKU
		product.SKU = &sku
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id uint, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.SKU != nil {
		// Clearing the SKU writes NULL, not the empty string.
		if *req.SKU == "" {
			updates["sku"] = nil
		} else {
			updates["sku"] = *req.SKU
		}
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.Specifications != nil {
		updates["specifications"] = models.JSONB(req.Specifications)
	}
	if req.Features != nil {
		updates["features"] = *req.Features
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// Categories

func (s *ProductService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *ProductService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *ProductService) CreateCategory(req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *ProductService) UpdateCategory(id uint, req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}
	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (s *ProductService) DeleteCategory(id uint) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
