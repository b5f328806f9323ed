// internal/services/token_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodexhq/prodex-backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("alice@example.com", 42, models.PrincipalKindCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, uint(42), claims.PrincipalID)
	assert.Equal(t, models.PrincipalKindCustomer, claims.Kind)
}

func TestTokenHasNoExpiry(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("bob@example.com", 7, models.PrincipalKindAdmin)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	// Tokens stay valid for the lifetime of the signing secret.
	assert.Nil(t, claims.ExpiresAt)
}

func TestTokenKindPropagation(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("root@example.com", 1, models.PrincipalKindAdmin)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, models.PrincipalKindAdmin, claims.Kind)
}

func TestTokenTamperRejected(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("alice@example.com", 42, models.PrincipalKindCustomer)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + parts[2][:len(parts[2])-2] + "xx"

	_, err = svc.Validate(tampered)
	assert.Error(t, err)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue("alice@example.com", 42, models.PrincipalKindCustomer)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}
