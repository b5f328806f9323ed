// internal/models/order.go
package models

// Order is a snapshot record, not derived from a cart. Customer fields are
// copied in at creation time so later customer edits never rewrite history.
type Order struct {
	BaseModel
	OrderNumber   string      `json:"order_number" gorm:"uniqueIndex;size:100;not null"`
	CustomerName  string      `json:"customer_name" gorm:"size:255;not null"`
	CustomerEmail string      `json:"customer_email" gorm:"size:255"`
	TotalAmount   float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status        OrderStatus `json:"status" gorm:"type:varchar(50);default:'pending';index"`
}
