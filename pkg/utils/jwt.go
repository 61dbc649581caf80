package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

var ErrMalformedToken = errors.New("malformed token")

// TokenClaims are the access-token claims the storefront reads. The backend
// owns the signing key, so signatures are never verified here.
type TokenClaims struct {
	Subject   string
	Type      string
	ExpiresAt time.Time
}

func ExtractTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrMalformedToken
	}

	result := TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		result.Subject = sub
	}
	if typ, ok := claims["type"].(string); ok {
		result.Type = typ
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return result, nil
}

func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
