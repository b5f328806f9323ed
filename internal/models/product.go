// internal/models/product.go
package models

// Product's SKU is nullable-unique: products without one store NULL, which
// never collides under the unique index.
type Product struct {
	BaseModel
	Name           string  `json:"name" gorm:"size:255;not null"`
	Description    string  `json:"description" gorm:"type:text"`
	Price          float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock          int     `json:"stock" gorm:"default:0"`
	Category       string  `json:"category" gorm:"size:100;index"`
	SKU            *string `json:"sku" gorm:"size:100;uniqueIndex"`
	Brand          string  `json:"brand" gorm:"size:100"`
	Model          string  `json:"model" gorm:"size:100"`
	ImageURL       string  `json:"image_url" gorm:"size:500"`
	Thumbnail      string  `json:"thumbnail" gorm:"size:500"`
	Specifications JSONB   `json:"specifications" gorm:"type:jsonb"`
	Features       string  `json:"features" gorm:"type:text"`
	IsActive       bool    `json:"is_active" gorm:"default:true"`
}

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"size:500"`
}
