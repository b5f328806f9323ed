// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
)

type CartServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *CartService
}

func (s *CartServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewCartService(s.db)
}

func (s *CartServiceTestSuite) createProduct(name string, price float64) *models.Product {
	product := &models.Product{
		Name:     name,
		Price:    price,
		Stock:    100,
		IsActive: true,
	}
	s.Require().NoError(s.db.Create(product).Error)
	return product
}

func customerIdentity(id uint) CartIdentity {
	return CartIdentity{CustomerID: &id}
}

func sessionIdentity(sessionID string) CartIdentity {
	return CartIdentity{SessionID: sessionID}
}

func (s *CartServiceTestSuite) TestGetCartWithoutIdentity() {
	_, err := s.svc.GetCart(CartIdentity{})
	s.ErrorIs(err, ErrCartIdentityRequired)
}

func (s *CartServiceTestSuite) TestGetCartSyntheticEmptyView() {
	view, err := s.svc.GetCart(sessionIdentity("s1"))
	s.Require().NoError(err)

	s.Equal(uint(0), view.ID)
	s.Empty(view.Items)
	s.Zero(view.TotalAmount)

	// No cart row was materialized by the read.
	var count int64
	s.Require().NoError(s.db.Model(&models.Cart{}).Count(&count).Error)
	s.Zero(count)
}

func (s *CartServiceTestSuite) TestAddItemMaterializesAnonymousCart() {
	product := s.createProduct("Widget", 9.99)

	view, err := s.svc.AddItem(sessionIdentity("s1"), product.ID, 1)
	s.Require().NoError(err)

	s.NotZero(view.ID)
	s.Require().NotNil(view.SessionID)
	s.Equal("s1", *view.SessionID)
	s.Require().Len(view.Items, 1)
	s.Equal(product.ID, view.Items[0].ProductID)
	s.InDelta(9.99, view.TotalAmount, 0.001)
}

func (s *CartServiceTestSuite) TestAddItemMergesDuplicateLines() {
	product := s.createProduct("Widget", 10.00)
	identity := sessionIdentity("s1")

	_, err := s.svc.AddItem(identity, product.ID, 2)
	s.Require().NoError(err)

	view, err := s.svc.AddItem(identity, product.ID, 1)
	s.Require().NoError(err)

	s.Require().Len(view.Items, 1)
	s.Equal(3, view.Items[0].Quantity)
	s.InDelta(30.00, view.TotalAmount, 0.001)
}

func (s *CartServiceTestSuite) TestAddItemPriceSnapshotStable() {
	product := s.createProduct("Widget", 10.00)
	identity := sessionIdentity("s1")

	_, err := s.svc.AddItem(identity, product.ID, 1)
	s.Require().NoError(err)

	// A later catalog price change does not move the line price.
	s.Require().NoError(s.db.Model(product).Update("price", 25.00).Error)

	view, err := s.svc.AddItem(identity, product.ID, 1)
	s.Require().NoError(err)

	s.Require().Len(view.Items, 1)
	s.InDelta(10.00, view.Items[0].Price, 0.001)
	s.InDelta(20.00, view.TotalAmount, 0.001)
	// The product summary reflects the current catalog price.
	s.InDelta(25.00, view.Items[0].Product.Price, 0.001)
}

func (s *CartServiceTestSuite) TestAddItemUnknownProduct() {
	_, err := s.svc.AddItem(sessionIdentity("s1"), 999, 1)
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *CartServiceTestSuite) TestAddItemNonPositiveQuantity() {
	product := s.createProduct("Widget", 10.00)

	_, err := s.svc.AddItem(sessionIdentity("s1"), product.ID, 0)
	s.Error(err)
}

func (s *CartServiceTestSuite) TestIdentityPrecedenceCustomerWins() {
	product := s.createProduct("Widget", 10.00)

	// Anonymous session cart with one line.
	_, err := s.svc.AddItem(sessionIdentity("s1"), product.ID, 1)
	s.Require().NoError(err)

	// The same caller, now logged in as customer 7 but still carrying the
	// session id, resolves to the customer cart, not the session cart.
	customerID := uint(7)
	both := CartIdentity{CustomerID: &customerID, SessionID: "s1"}

	view, err := s.svc.GetCart(both)
	s.Require().NoError(err)
	s.Empty(view.Items)

	view, err = s.svc.AddItem(both, product.ID, 2)
	s.Require().NoError(err)
	s.Require().NotNil(view.CustomerID)
	s.Equal(uint(7), *view.CustomerID)
	s.Require().Len(view.Items, 1)
	s.Equal(2, view.Items[0].Quantity)

	// The session cart is untouched.
	sessionView, err := s.svc.GetCart(sessionIdentity("s1"))
	s.Require().NoError(err)
	s.Require().Len(sessionView.Items, 1)
	s.Equal(1, sessionView.Items[0].Quantity)
}

func (s *CartServiceTestSuite) TestUpdateItemQuantityZeroDeletes() {
	widget := s.createProduct("Widget", 10.00)
	gadget := s.createProduct("Gadget", 5.00)
	identity := sessionIdentity("s1")

	_, err := s.svc.AddItem(identity, widget.ID, 2)
	s.Require().NoError(err)
	view, err := s.svc.AddItem(identity, gadget.ID, 1)
	s.Require().NoError(err)
	s.Require().Len(view.Items, 2)
	s.InDelta(25.00, view.TotalAmount, 0.001)

	view, err = s.svc.UpdateItem(identity, view.Items[0].ID, 0)
	s.Require().NoError(err)

	s.Require().Len(view.Items, 1)
	s.Equal(gadget.ID, view.Items[0].ProductID)
	s.InDelta(5.00, view.TotalAmount, 0.001)
}

func (s *CartServiceTestSuite) TestUpdateItemOverwritesQuantity() {
	product := s.createProduct("Widget", 10.00)
	identity := sessionIdentity("s1")

	view, err := s.svc.AddItem(identity, product.ID, 2)
	s.Require().NoError(err)

	view, err = s.svc.UpdateItem(identity, view.Items[0].ID, 5)
	s.Require().NoError(err)

	s.Equal(5, view.Items[0].Quantity)
	s.InDelta(50.00, view.TotalAmount, 0.001)
}

func (s *CartServiceTestSuite) TestUpdateItemForeignCartRejected() {
	product := s.createProduct("Widget", 10.00)

	view, err := s.svc.AddItem(sessionIdentity("s1"), product.ID, 1)
	s.Require().NoError(err)

	_, err = s.svc.UpdateItem(sessionIdentity("s2"), view.Items[0].ID, 5)
	s.ErrorIs(err, ErrCartForbidden)
}

func (s *CartServiceTestSuite) TestRemoveItemForeignCartRejected() {
	product := s.createProduct("Widget", 10.00)

	view, err := s.svc.AddItem(sessionIdentity("s1"), product.ID, 1)
	s.Require().NoError(err)

	_, err = s.svc.RemoveItem(customerIdentity(7), view.Items[0].ID)
	s.ErrorIs(err, ErrCartForbidden)
}

func (s *CartServiceTestSuite) TestUpdateUnknownItem() {
	_, err := s.svc.UpdateItem(sessionIdentity("s1"), 999, 1)
	s.ErrorIs(err, ErrCartItemNotFound)
}

func (s *CartServiceTestSuite) TestRemoveItem() {
	product := s.createProduct("Widget", 10.00)
	identity := sessionIdentity("s1")

	view, err := s.svc.AddItem(identity, product.ID, 1)
	s.Require().NoError(err)

	view, err = s.svc.RemoveItem(identity, view.Items[0].ID)
	s.Require().NoError(err)
	s.Empty(view.Items)
	s.Zero(view.TotalAmount)
}

func (s *CartServiceTestSuite) TestClear() {
	widget := s.createProduct("Widget", 10.00)
	gadget := s.createProduct("Gadget", 5.00)
	identity := sessionIdentity("s1")

	_, err := s.svc.AddItem(identity, widget.ID, 1)
	s.Require().NoError(err)
	_, err = s.svc.AddItem(identity, gadget.ID, 1)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Clear(identity))

	view, err := s.svc.GetCart(identity)
	s.Require().NoError(err)
	s.Empty(view.Items)
	s.Zero(view.TotalAmount)
	// The cart row itself survives the clear.
	s.NotZero(view.ID)
}

func (s *CartServiceTestSuite) TestClearWithoutCartIsNoop() {
	s.NoError(s.svc.Clear(sessionIdentity("never-seen")))
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
