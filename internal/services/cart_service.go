// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/models"
)

// CartService resolves logical carts from a customer or anonymous session
// identity, merges duplicate line items, and recomputes totals. Concurrent
// increments on the same item are last-committed-wins; there is no
// optimistic-lock field.
type CartService struct {
	db *gorm.DB
}

// CartIdentity keys a logical cart. When both fields are set the customer id
// wins: a logged-in customer still carrying a stale session id is treated as
// the customer.
type CartIdentity struct {
	CustomerID *uint
	SessionID  string
}

type CartProductView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Thumbnail string  `json:"thumbnail"`
	ImageURL  string  `json:"image_url"`
	Price     float64 `json:"price"`
}

type CartItemView struct {
	ID        uint            `json:"id"`
	CartID    uint            `json:"cart_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	Product   CartProductView `json:"product"`
	CreatedAt time.Time       `json:"created_at"`
}

type CartView struct {
	ID          uint           `json:"id"`
	CustomerID  *uint          `json:"customer_id"`
	SessionID   *string        `json:"session_id"`
	Items       []CartItemView `json:"items"`
	TotalAmount float64        `json:"total_amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{
		db: db,
	}
}

func (id CartIdentity) empty() bool {
	return id.CustomerID == nil && id.SessionID == ""
}

// findCart looks up the cart row for an identity by the precedence rule.
// Returns gorm.ErrRecordNotFound when no cart exists yet.
func (s *CartService) findCart(tx *gorm.DB, identity CartIdentity) (*models.Cart, error) {
	if identity.empty() {
		return nil, ErrCartIdentityRequired
	}

	var cart models.Cart
	query := tx
	if identity.CustomerID != nil {
		query = query.Where("customer_id = ?", *identity.CustomerID)
	} else {
		query = query.Where("session_id = ?", identity.SessionID)
	}

	if err := query.First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart returns the cart view for an identity. A missing cart is not an
// error: the caller gets a synthetic empty view with id 0, since carts are
// only materialized on first add.
func (s *CartService) GetCart(identity CartIdentity) (*CartView, error) {
	cart, err := s.findCart(s.db, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.emptyView(identity), nil
		}
		return nil, err
	}

	return s.buildView(cart)
}

// AddItem resolves or lazily creates the cart for this identity, then
// inserts the line item or increments the existing one. Cart creation and
// the item write commit together.
func (s *CartService) AddItem(identity CartIdentity, productID uint, quantity int) (*CartView, error) {
	if identity.empty() {
		return nil, ErrCartIdentityRequired
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.findCart(tx, identity)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cart = &models.Cart{CustomerID: identity.CustomerID}
			if identity.CustomerID == nil {
				sessionID := identity.SessionID
				cart.SessionID = &sessionID
			}
			if err := tx.Create(cart).Error; err != nil {
				return fmt.Errorf("failed to create cart: %w", err)
			}
		}

		// The product must exist; its active flag is not consulted here.
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			if err := tx.Save(&item).Error; err != nil {
				return fmt.Errorf("failed to update cart item: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
				Price:     product.Price, // price snapshot, frozen on first add
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create cart item: %w", err)
			}
		default:
			return fmt.Errorf("database error: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(identity)
}

// UpdateItem overwrites an item's quantity; a non-positive quantity deletes
// the item instead of failing. The item must belong to the caller's resolved
// cart.
func (s *CartService) UpdateItem(identity CartIdentity, itemID uint, quantity int) (*CartView, error) {
	item, err := s.ownedItem(identity, itemID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.db.Delete(item).Error; err != nil {
			return nil, fmt.Errorf("failed to delete cart item: %w", err)
		}
	} else {
		if err := s.db.Model(item).Update("quantity", quantity).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	}

	return s.GetCart(identity)
}

// RemoveItem deletes an item owned by the caller's cart.
func (s *CartService) RemoveItem(identity CartIdentity, itemID uint) (*CartView, error) {
	item, err := s.ownedItem(identity, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return s.GetCart(identity)
}

// Clear removes every item from the identity's cart. No cart is not an
// error.
func (s *CartService) Clear(identity CartIdentity) error {
	cart, err := s.findCart(s.db, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// ownedItem loads an item and verifies it belongs to the cart resolved from
// the caller's identity, so one identity can never mutate another's cart.
func (s *CartService) ownedItem(identity CartIdentity, itemID uint) (*models.CartItem, error) {
	if identity.empty() {
		return nil, ErrCartIdentityRequired
	}

	var item models.CartItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	cart, err := s.findCart(s.db, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartForbidden
		}
		return nil, err
	}

	if item.CartID != cart.ID {
		return nil, ErrCartForbidden
	}

	return &item, nil
}

func (s *CartService) emptyView(identity CartIdentity) *CartView {
	view := &CartView{
		ID:         0,
		CustomerID: identity.CustomerID,
		Items:      []CartItemView{},
	}
	if identity.SessionID != "" {
		sessionID := identity.SessionID
		view.SessionID = &sessionID
	}
	return view
}

// buildView recomputes the full cart view: items in insertion order with
// their product summaries, total as the sum of snapshot price times
// quantity.
func (s *CartService) buildView(cart *models.Cart) (*CartView, error) {
	var items []models.CartItem
	if err := s.db.Where("cart_id = ?", cart.ID).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	view := &CartView{
		ID:         cart.ID,
		CustomerID: cart.CustomerID,
		SessionID:  cart.SessionID,
		Items:      make([]CartItemView, 0, len(items)),
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}

	for _, item := range items {
		var product models.Product
		if err := s.db.First(&product, item.ProductID).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load product: %w", err)
		}

		view.Items = append(view.Items, CartItemView{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Product: CartProductView{
				ID:        product.ID,
				Name:      product.Name,
				Thumbnail: product.Thumbnail,
				ImageURL:  product.ImageURL,
				Price:     product.Price,
			},
			CreatedAt: item.CreatedAt,
		})
		view.TotalAmount += item.Price * float64(item.Quantity)
	}

	return view, nil
}
