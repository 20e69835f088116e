package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating access tokens issued by
// the auth service. Token issuance is out of scope here.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
