// internal/services/token_service.go
package services

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"

	"github.com/prodexhq/prodex-backend/internal/models"
)

// TokenClaims carries the principal identity inside a bearer token. The
// subject is the principal's email. No expiry claim is embedded: a token
// stays valid as long as its signature verifies.
type TokenClaims struct {
	PrincipalID uint                 `json:"principal_id"`
	Kind        models.PrincipalKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with a process-wide secret.
// It is stateless: validity is purely a function of the signature.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
	}
}

func (s *TokenService) Issue(email string, principalID uint, kind models.PrincipalKind) (string, error) {
	claims := TokenClaims{
		PrincipalID: principalID,
		Kind:        kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
