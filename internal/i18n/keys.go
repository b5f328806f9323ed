// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired          = "auth.required"
	KeyAuthInvalidToken      = "auth.invalid_token"
	KeyAuthBadCredentials    = "auth.bad_credentials"
	KeyAuthAccountDisabled   = "auth.account_disabled"
	KeyAuthNotAdmin          = "auth.not_admin"
	KeyAuthEmailTaken        = "auth.email_taken"
	KeyAuthUsernameTaken     = "auth.username_taken"
	KeyAuthInvalidResetToken = "auth.invalid_reset_token"
	KeyAuthUserNotFound      = "auth.user_not_found"
	KeyAuthLoginSuccess      = "auth.login_success"
	KeyAuthRegisterSuccess   = "auth.register_success"
	KeyAuthPasswordForgot    = "auth.password_forgot"
	KeyAuthPasswordReset     = "auth.password_reset"
	KeyAuthProfileUpdated    = "auth.profile_updated"
	KeyAuthEmailVerified     = "auth.email_verified"

	// Cart
	KeyCartIdentityRequired = "cart.identity_required"
	KeyCartItemNotFound     = "cart_item.not_found"
	KeyCartForbidden        = "cart.forbidden"
	KeyCartCleared          = "cart.cleared"

	// Entities
	KeyProductNotFound  = "product.not_found"
	KeyProductDeleted   = "product.deleted"
	KeyCategoryNotFound = "category.not_found"
	KeyCategoryDeleted  = "category.deleted"
	KeyOrderNotFound    = "order.not_found"
	KeyOrderDeleted     = "order.deleted"
	KeyCustomerNotFound = "customer.not_found"
	KeyCustomerDeleted  = "customer.deleted"
	KeyUserNotFound     = "user.not_found"

	// Admin
	KeyAdminAccessDenied    = "admin.access_denied"
	KeyAdminSettingsUpdated = "admin.settings_updated"

	// Proxy
	KeyProxyImageNotFound = "proxy.image_not_found"
	KeyProxyFetchFailed   = "proxy.fetch_failed"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
