// internal/models/cart.go
package models

// Cart is keyed by exactly one of CustomerID or SessionID. The unique
// indexes keep at most one live cart per customer and per anonymous session
// (NULLs do not collide).
type Cart struct {
	BaseModel
	CustomerID *uint      `json:"customer_id" gorm:"uniqueIndex"`
	SessionID  *string    `json:"session_id" gorm:"uniqueIndex;size:255"`
	Items      []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

// CartItem holds a price snapshot captured on first add; repeated adds of
// the same product increment Quantity instead of inserting a second row.
type CartItem struct {
	BaseModel
	CartID    uint    `json:"cart_id" gorm:"not null;index:idx_cart_items_cart_product,unique"`
	ProductID uint    `json:"product_id" gorm:"not null;index:idx_cart_items_cart_product,unique"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}
