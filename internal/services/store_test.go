// internal/services/store_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

type StoreTestSuite struct {
	suite.Suite
	db        *gorm.DB
	products  *ProductService
	orders    *OrderService
	customers *CustomerService
}

func (s *StoreTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.products = NewProductService(s.db)
	s.orders = NewOrderService(s.db)
	s.customers = NewCustomerService(s.db)
}

func (s *StoreTestSuite) TestProductPartialUpdate() {
	product, err := s.products.CreateProduct(&CreateProductRequest{
		Name:  "Widget",
		Price: 10,
		Stock: 5,
		Brand: "Acme",
	})
	s.Require().NoError(err)

	price := 12.5
	updated, err := s.products.UpdateProduct(product.ID, &UpdateProductRequest{Price: &price})
	s.Require().NoError(err)

	var reloaded models.Product
	s.Require().NoError(s.db.First(&reloaded, updated.ID).Error)
	s.InDelta(12.5, reloaded.Price, 0.001)
	// Untouched fields survive the partial update.
	s.Equal("Widget", reloaded.Name)
	s.Equal("Acme", reloaded.Brand)
	s.Equal(5, reloaded.Stock)
}

func (s *StoreTestSuite) TestProductsWithoutSKUDoNotCollide() {
	first, err := s.products.CreateProduct(&CreateProductRequest{Name: "Widget"})
	s.Require().NoError(err)
	s.Nil(first.SKU)

	// A second SKU-less product must not trip the unique index.
	second, err := s.products.CreateProduct(&CreateProductRequest{Name: "Gadget"})
	s.Require().NoError(err)
	s.Nil(second.SKU)
}

func (s *StoreTestSuite) TestProductDuplicateSKURejected() {
	_, err := s.products.CreateProduct(&CreateProductRequest{Name: "Widget", SKU: "SKU-1"})
	s.Require().NoError(err)

	_, err = s.products.CreateProduct(&CreateProductRequest{Name: "Gadget", SKU: "SKU-1"})
	s.Error(err)
}

func (s *StoreTestSuite) TestProductClearSKU() {
	product, err := s.products.CreateProduct(&CreateProductRequest{Name: "Widget", SKU: "SKU-1"})
	s.Require().NoError(err)

	empty := ""
	_, err = s.products.UpdateProduct(product.ID, &UpdateProductRequest{SKU: &empty})
	s.Require().NoError(err)

	var reloaded models.Product
	s.Require().NoError(s.db.First(&reloaded, product.ID).Error)
	s.Nil(reloaded.SKU)

	// The freed SKU is reusable.
	_, err = s.products.CreateProduct(&CreateProductRequest{Name: "Gadget", SKU: "SKU-1"})
	s.NoError(err)
}

func (s *StoreTestSuite) TestProductListFiltersByCategory() {
	_, err := s.products.CreateProduct(&CreateProductRequest{Name: "Widget", Category: "tools"})
	s.Require().NoError(err)
	_, err = s.products.CreateProduct(&CreateProductRequest{Name: "Gadget", Category: "toys"})
	s.Require().NoError(err)

	list, total, err := s.products.ListProducts(utils.PaginationParams{
		Page: 1, Limit: 20, Sort: "created_at", Order: "desc", Category: "tools",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(list, 1)
	s.Equal("Widget", list[0].Name)
}

func (s *StoreTestSuite) TestOrderNumberGeneratedWhenOmitted() {
	order, err := s.orders.CreateOrder(&CreateOrderRequest{
		CustomerName: "Alice",
		TotalAmount:  42,
	})
	s.Require().NoError(err)

	s.True(strings.HasPrefix(order.OrderNumber, "ORD-"))
	s.Equal(models.OrderStatusPending, order.Status)
}

func (s *StoreTestSuite) TestOrderNumberFrozenOnUpdate() {
	order, err := s.orders.CreateOrder(&CreateOrderRequest{
		OrderNumber:  "ORD-FIXED",
		CustomerName: "Alice",
		TotalAmount:  42,
	})
	s.Require().NoError(err)

	status := "paid"
	updated, err := s.orders.UpdateOrder(order.ID, &UpdateOrderRequest{Status: &status})
	s.Require().NoError(err)

	var reloaded models.Order
	s.Require().NoError(s.db.First(&reloaded, updated.ID).Error)
	s.Equal("ORD-FIXED", reloaded.OrderNumber)
	s.Equal(models.OrderStatus("paid"), reloaded.Status)
}

func (s *StoreTestSuite) TestDeleteCustomerDeactivatesOnly() {
	customer, err := s.customers.CreateCustomer(&CreateCustomerRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "pw1",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.customers.DeleteCustomer(customer.ID))

	var reloaded models.Customer
	s.Require().NoError(s.db.First(&reloaded, customer.ID).Error)
	s.False(reloaded.IsActive)
}

func (s *StoreTestSuite) TestGetUnknownEntities() {
	_, err := s.products.GetProduct(999)
	s.ErrorIs(err, ErrProductNotFound)

	_, err = s.orders.GetOrder(999)
	s.ErrorIs(err, ErrOrderNotFound)

	_, err = s.customers.GetCustomer(999)
	s.ErrorIs(err, ErrCustomerNotFound)

	_, err = s.products.GetCategory(999)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
