// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User is an administrator account for the admin panel.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	FullName     string `json:"full_name" gorm:"size:255"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsSuperuser  bool   `json:"is_superuser" gorm:"default:false"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
