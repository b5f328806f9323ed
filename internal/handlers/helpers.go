// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prodexhq/prodex-backend/internal/i18n"
	"github.com/prodexhq/prodex-backend/internal/services"
	"github.com/prodexhq/prodex-backend/internal/utils"
)

// parseIDParam reads the :id path segment as an unsigned integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// handleServiceError translates service sentinels into HTTP responses.
// Anything unrecognized is a 500 with a generic message; the logger
// middleware has the detail.
func handleServiceError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrBadCredentials):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthBadCredentials))
	case errors.Is(err, services.ErrAccountDisabled):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthAccountDisabled))
	case errors.Is(err, services.ErrNotAdmin):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthNotAdmin))
	case errors.Is(err, services.ErrEmailTaken):
		utils.ErrorResponse(c, http.StatusBadRequest, "EMAIL_TAKEN", i18n.T(lang, i18n.KeyAuthEmailTaken), nil)
	case errors.Is(err, services.ErrUsernameTaken):
		utils.ErrorResponse(c, http.StatusBadRequest, "USERNAME_TAKEN", i18n.T(lang, i18n.KeyAuthUsernameTaken), nil)
	case errors.Is(err, services.ErrInvalidResetToken):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthInvalidResetToken), nil)
	case errors.Is(err, services.ErrMissingCredential):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
	case errors.Is(err, services.ErrInvalidToken):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
	case errors.Is(err, services.ErrPrincipalNotFound):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthUserNotFound))
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrCartIdentityRequired):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartIdentityRequired), nil)
	case errors.Is(err, services.ErrCartItemNotFound):
		utils.NotFoundResponse(c, "cart_item")
	case errors.Is(err, services.ErrCartForbidden):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyCartForbidden))
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "product")
	case errors.Is(err, services.ErrCategoryNotFound):
		utils.NotFoundResponse(c, "category")
	case errors.Is(err, services.ErrOrderNotFound):
		utils.NotFoundResponse(c, "order")
	case errors.Is(err, services.ErrCustomerNotFound):
		utils.NotFoundResponse(c, "customer")
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFoundResponse(c, "user")
	default:
		if validationErrs := utils.GetValidationErrors(err); len(validationErrs) > 0 {
			utils.ValidationErrorResponse(c, validationErrs)
			return
		}
		utils.InternalErrorResponse(c, "")
	}
}
