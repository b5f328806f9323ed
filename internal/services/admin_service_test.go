// internal/services/admin_service_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
)

type AdminServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *AdminService
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewAdminService(s.db)
}

func (s *AdminServiceTestSuite) createOrder(number string, amount float64, createdAt time.Time) *models.Order {
	order := &models.Order{
		OrderNumber:  number,
		CustomerName: "Customer " + number,
		TotalAmount:  amount,
		Status:       models.OrderStatusPending,
	}
	order.CreatedAt = createdAt
	s.Require().NoError(s.db.Create(order).Error)
	return order
}

func (s *AdminServiceTestSuite) TestDashboardStatsEmpty() {
	stats, err := s.svc.GetDashboardStats()
	s.Require().NoError(err)

	s.Zero(stats.TotalUsers)
	s.Zero(stats.TotalProducts)
	s.Zero(stats.TotalOrders)
	s.Zero(stats.TotalRevenue)
	s.Empty(stats.RecentOrders)
	s.Empty(stats.TopProducts)
}

func (s *AdminServiceTestSuite) TestDashboardStatsAggregation() {
	admin := &models.User{Email: "root@example.com", Username: "root", IsActive: true, IsSuperuser: true}
	s.Require().NoError(admin.SetPassword("pw1"))
	s.Require().NoError(s.db.Create(admin).Error)

	s.Require().NoError(s.db.Create(&models.Product{Name: "Widget", Price: 10, IsActive: true}).Error)
	s.Require().NoError(s.db.Create(&models.Product{Name: "Gadget", Price: 5, IsActive: true}).Error)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	s.createOrder("ORD-1", 10.50, base)
	s.createOrder("ORD-2", 20.25, base.Add(time.Minute))
	s.createOrder("ORD-3", 4.25, base.Add(2*time.Minute))

	stats, err := s.svc.GetDashboardStats()
	s.Require().NoError(err)

	s.Equal(int64(1), stats.TotalUsers)
	s.Equal(int64(2), stats.TotalProducts)
	s.Equal(int64(3), stats.TotalOrders)
	s.InDelta(35.00, stats.TotalRevenue, 0.001)
	s.Require().Len(stats.RecentOrders, 3)
	s.Equal("ORD-3", stats.RecentOrders[0].OrderNumber)
	s.Equal("ORD-1", stats.RecentOrders[2].OrderNumber)
}

func (s *AdminServiceTestSuite) TestDashboardRecentOrdersLimitAndTieBreak() {
	// Seven orders sharing one second-resolution timestamp: the list is
	// capped at five and ties resolve by ascending id.
	at := time.Now().Truncate(time.Second)
	for i := 1; i <= 7; i++ {
		s.createOrder(fmt.Sprintf("ORD-%d", i), float64(i), at)
	}

	stats, err := s.svc.GetDashboardStats()
	s.Require().NoError(err)

	s.Require().Len(stats.RecentOrders, 5)
	for i := 0; i < 4; i++ {
		s.Less(stats.RecentOrders[i].ID, stats.RecentOrders[i+1].ID)
	}
	s.Equal("ORD-1", stats.RecentOrders[0].OrderNumber)
}

func (s *AdminServiceTestSuite) TestCreateUserDuplicateEmail() {
	_, err := s.svc.CreateUser(&CreateUserRequest{
		Email:    "root@example.com",
		Username: "root",
		Password: "pw1",
	})
	s.Require().NoError(err)

	_, err = s.svc.CreateUser(&CreateUserRequest{
		Email:    "root@example.com",
		Username: "other",
		Password: "pw1",
	})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AdminServiceTestSuite) TestSettingsUpsert() {
	s.Require().NoError(s.svc.UpdateSetting("store_name", "Prodex"))
	s.Require().NoError(s.svc.UpdateSetting("store_name", "Prodex Store"))
	s.Require().NoError(s.svc.UpdateSetting("store_currency", "USD"))

	settings, err := s.svc.GetSettings()
	s.Require().NoError(err)

	s.Equal("Prodex Store", settings["store_name"])
	s.Equal("USD", settings["store_currency"])

	var count int64
	s.Require().NoError(s.db.Model(&models.Setting{}).Count(&count).Error)
	s.Equal(int64(2), count)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
