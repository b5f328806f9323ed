// internal/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/services"
)

// CustomerAuth rejects requests without a valid customer bearer token.
func CustomerAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := langFromContext(c)

		customer, err := authService.AuthenticateCustomer(c.GetHeader("Authorization"))
		if err != nil {
			status, key := authErrorStatus(err)
			c.JSON(status, gin.H{
				"error": i18n.T(lang, key),
			})
			c.Abort()
			return
		}

		c.Set("customer_id", customer.ID)
		c.Set("principal_email", customer.Email)
		c.Next()
	}
}

// AdminAuth rejects requests unless the bearer token resolves to an admin
// user with the superuser flag set.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := langFromContext(c)

		admin, err := authService.AuthenticateAdmin(c.GetHeader("Authorization"))
		if err == nil {
			err = authService.AuthorizeAdmin(admin)
		}
		if err != nil {
			status, key := authErrorStatus(err)
			c.JSON(status, gin.H{
				"error": i18n.T(lang, key),
			})
			c.Abort()
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("principal_email", admin.Email)
		c.Next()
	}
}

// OptionalCustomerAuth resolves a customer identity when a valid token is
// present and lets the request through either way. Cart routes use it to
// prefer the authenticated customer over an anonymous session id.
func OptionalCustomerAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, err := authService.AuthenticateCustomer(c.GetHeader("Authorization"))
		if err == nil {
			c.Set("customer_id", customer.ID)
			c.Set("principal_email", customer.Email)
		}
		c.Next()
	}
}

func authErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingCredential):
		return http.StatusUnauthorized, i18n.KeyAuthRequired
	case errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized, i18n.KeyAuthInvalidToken
	case errors.Is(err, services.ErrPrincipalNotFound):
		return http.StatusUnauthorized, i18n.KeyAuthUserNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, i18n.KeyAdminAccessDenied
	default:
		return http.StatusUnauthorized, i18n.KeyAuthRequired
	}
}

func langFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}
