// internal/services/errors.go
package services

import "errors"

// Auth errors. Handlers map these to HTTP statuses; they are stable kinds
// matched with errors.Is, never string-compared.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidToken      = errors.New("invalid token")
	ErrPrincipalNotFound = errors.New("principal not found")
	ErrBadCredentials    = errors.New("incorrect email or password")
	ErrAccountDisabled   = errors.New("account is deactivated")
	ErrNotAdmin          = errors.New("not an admin account")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrForbidden         = errors.New("forbidden")
)

// Cart errors.
var (
	ErrCartIdentityRequired = errors.New("customer_id or session_id required")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrCartForbidden        = errors.New("cart item does not belong to this cart")
)

// Entity not-found errors for direct CRUD.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUserNotFound     = errors.New("user not found")
)
