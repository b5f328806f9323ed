// internal/models/customer.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Customer is a storefront shopper account.
type Customer struct {
	BaseModel
	Email             string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username          string     `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash      string     `json:"-" gorm:"size:255;not null"`
	Name              string     `json:"name" gorm:"size:255"`
	Phone             string     `json:"phone" gorm:"size:50"`
	Address           string     `json:"address" gorm:"size:500"`
	City              string     `json:"city" gorm:"size:100"`
	Country           string     `json:"country" gorm:"size:100"`
	IsActive          bool       `json:"is_active" gorm:"default:true"`
	IsVerified        bool       `json:"is_verified" gorm:"default:false"`
	VerificationToken *string    `json:"-" gorm:"size:255"`
	ResetToken        *string    `json:"-" gorm:"size:255;index"`
	ResetTokenExpires *time.Time `json:"-"`
}

func (c *Customer) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hashedPassword)
	return nil
}

func (c *Customer) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
}
