// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/database"
	"github.com/prodexhq/prodex-backend/internal/models"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

const bearerPrefix = "Bearer "

type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
}

type CustomerAuthResponse struct {
	Customer    *models.Customer `json:"customer"`
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
}

type AdminAuthResponse struct {
	Admin       *models.User `json:"admin"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{
		db:     db,
		tokens: tokens,
	}
}

// Register creates a customer account. The email check runs before the
// username check, so a request conflicting on both reports the email.
func (s *AuthService) Register(req *RegisterRequest) (*models.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.Customer
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	verificationToken, err := utils.GenerateVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	customer := &models.Customer{
		Email:             req.Email,
		Username:          req.Username,
		Name:              req.Name,
		Phone:             req.Phone,
		IsActive:          true,
		IsVerified:        false,
		VerificationToken: &verificationToken,
	}

	if err := customer.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// Login authenticates a customer. A missing account and a wrong password are
// indistinguishable to the caller; the disabled check only runs after the
// credentials are known to be good.
func (s *AuthService) Login(req *LoginRequest) (*CustomerAuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var customer models.Customer
	if err := s.db.Where("email = ?", req.Email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := customer.CheckPassword(req.Password); err != nil {
		return nil, ErrBadCredentials
	}

	if !customer.IsActive {
		return nil, ErrAccountDisabled
	}

	accessToken, err := s.tokens.Issue(customer.Email, customer.ID, models.PrincipalKindCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &CustomerAuthResponse{
		Customer:    &customer,
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// AdminLogin is Login against the users table plus a superuser check, which
// runs after the disabled check.
func (s *AuthService) AdminLogin(req *LoginRequest) (*AdminAuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var admin models.User
	if err := s.db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := admin.CheckPassword(req.Password); err != nil {
		return nil, ErrBadCredentials
	}

	if !admin.IsActive {
		return nil, ErrAccountDisabled
	}

	if !admin.IsSuperuser {
		return nil, ErrNotAdmin
	}

	accessToken, err := s.tokens.Issue(admin.Email, admin.ID, models.PrincipalKindAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AdminAuthResponse{
		Admin:       &admin,
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ForgotPassword stores a single-use reset token with a one hour expiry.
// It never reports whether the email exists.
func (s *AuthService) ForgotPassword(req *ForgotPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var customer models.Customer
	if err := s.db.Where("email = ?", req.Email).First(&customer).Error; err != nil {
		return nil
	}

	resetToken, err := utils.GenerateVerificationToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expires := time.Now().Add(1 * time.Hour)
	customer.ResetToken = &resetToken
	customer.ResetTokenExpires = &expires

	if err := s.db.Save(&customer).Error; err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}

	return nil
}

// ResetPassword requires the token to match and its expiry to be strictly in
// the future. The password overwrite and the token clear commit together.
func (s *AuthService) ResetPassword(req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var customer models.Customer
	if err := s.db.Where("reset_token = ? AND reset_token_expires > ?", req.Token, time.Now()).
		First(&customer).Error; err != nil {
		return ErrInvalidResetToken
	}

	if err := customer.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"password_hash":       customer.PasswordHash,
			"reset_token":         nil,
			"reset_token_expires": nil,
		}
		if err := tx.Model(&customer).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return nil
	})
}

// VerifyEmail marks a customer verified and clears the verification token.
func (s *AuthService) VerifyEmail(token string) error {
	var customer models.Customer
	if err := s.db.Where("verification_token = ?", token).First(&customer).Error; err != nil {
		return ErrInvalidResetToken
	}

	updates := map[string]interface{}{
		"is_verified":        true,
		"verification_token": nil,
	}
	if err := s.db.Model(&customer).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to verify email: %w", err)
	}

	return nil
}

// UpdateProfile mutates the allow-listed profile fields only. Identity and
// credential fields are never client-patchable here.
func (s *AuthService) UpdateProfile(email string, req *UpdateProfileRequest) (*models.Customer, error) {
	customer, err := s.GetCustomerByEmail(email)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}

	if len(updates) > 0 {
		if err := s.db.Model(customer).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return customer, nil
}

func (s *AuthService) GetCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &customer, nil
}

// parseBearer extracts and validates the token from an Authorization header.
func (s *AuthService) parseBearer(header string) (*TokenClaims, error) {
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrMissingCredential
	}

	claims, err := s.tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AuthenticateCustomer resolves an Authorization header into a customer.
// The principal lookup is scoped to the token's kind; the active flag is
// enforced at login only, not here.
func (s *AuthService) AuthenticateCustomer(header string) (*models.Customer, error) {
	claims, err := s.parseBearer(header)
	if err != nil {
		return nil, err
	}

	if claims.Kind != models.PrincipalKindCustomer {
		return nil, ErrForbidden
	}

	return s.GetCustomerByEmail(claims.Subject)
}

// AuthenticateAdmin resolves an Authorization header into an admin user.
func (s *AuthService) AuthenticateAdmin(header string) (*models.User, error) {
	claims, err := s.parseBearer(header)
	if err != nil {
		return nil, err
	}

	if claims.Kind != models.PrincipalKindAdmin {
		return nil, ErrForbidden
	}

	var admin models.User
	if err := s.db.Where("email = ?", claims.Subject).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &admin, nil
}

// AuthorizeAdmin gates the admin surface on the superuser flag.
func (s *AuthService) AuthorizeAdmin(admin *models.User) error {
	if admin == nil || !admin.IsSuperuser {
		return ErrForbidden
	}
	return nil
}
