// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type AdminService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalUsers    int64            `json:"total_users"`
	TotalProducts int64            `json:"total_products"`
	TotalOrders   int64            `json:"total_orders"`
	TotalRevenue  float64          `json:"total_revenue"`
	RecentOrders  []models.Order   `json:"recent_orders"`
	TopProducts   []models.Product `json:"top_products"`
}

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,username"`
	Password    string `json:"password" validate:"required"`
	FullName    string `json:"full_name,omitempty"`
	IsSuperuser *bool  `json:"is_superuser,omitempty"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{
		db: db,
	}
}

// GetDashboardStats aggregates the dashboard rollups. Both limit-5 lists
// order by created_at descending with the row id as tie breaker, since
// timestamps can coincide at second resolution.
func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if err := s.db.Order("created_at desc, id asc").Limit(5).
		Find(&stats.RecentOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}

	if err := s.db.Order("created_at desc, id asc").Limit(5).
		Find(&stats.TopProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top products: %w", err)
	}

	return stats, nil
}

// Admin user management

func (s *AdminService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("email LIKE ? OR username LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "email", "username"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, total, nil
}

func (s *AdminService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		IsActive: true,
	}
	if req.IsSuperuser != nil {
		user.IsSuperuser = *req.IsSuperuser
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Settings

func (s *AdminService) GetSettings() (map[string]string, error) {
	var settings []models.Setting
	if err := s.db.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.SettingKey] = setting.SettingValue
	}
	return result, nil
}

func (s *AdminService) UpdateSetting(key, value string) error {
	var setting models.Setting
	err := s.db.Where("setting_key = ?", key).First(&setting).Error
	switch {
	case err == nil:
		if err := s.db.Model(&setting).Update("setting_value", value).Error; err != nil {
			return fmt.Errorf("failed to update setting: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.Setting{SettingKey: key, SettingValue: value}
		if err := s.db.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to create setting: %w", err)
		}
	default:
		return fmt.Errorf("database error: %w", err)
	}

	return nil
}
