// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	KeyAuthRequired,
	KeyAuthInvalidToken,
	KeyAuthBadCredentials,
	KeyAuthAccountDisabled,
	KeyAuthNotAdmin,
	KeyAuthEmailTaken,
	KeyAuthUsernameTaken,
	KeyAuthInvalidResetToken,
	KeyAuthUserNotFound,
	KeyAuthLoginSuccess,
	KeyAuthRegisterSuccess,
	KeyAuthPasswordForgot,
	KeyAuthPasswordReset,
	KeyAuthProfileUpdated,
	KeyAuthEmailVerified,
	KeyCartIdentityRequired,
	KeyCartItemNotFound,
	KeyCartForbidden,
	KeyCartCleared,
	KeyProductNotFound,
	KeyProductDeleted,
	KeyCategoryNotFound,
	KeyCategoryDeleted,
	KeyOrderNotFound,
	KeyOrderDeleted,
	KeyCustomerNotFound,
	KeyCustomerDeleted,
	KeyUserNotFound,
	KeyAdminAccessDenied,
	KeyAdminSettingsUpdated,
	KeyProxyImageNotFound,
	KeyProxyFetchFailed,
	KeyValidationRequired,
	KeyValidationInvalid,
}

// Every key constant must resolve in every catalog; an unresolved key leaks
// the raw key string into user-facing responses.
func TestAllKeysResolveInAllCatalogs(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	for _, lang := range []string{"en", "zh_TW"} {
		for _, key := range allKeys {
			assert.NotEqual(t, key, T(lang, key), "key %q missing from %s catalog", key, lang)
		}
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	assert.Equal(t, T("en", KeyUserNotFound), T("fr", KeyUserNotFound))
}
