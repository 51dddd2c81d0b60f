// Package auth validates Supabase-issued access tokens and enforces
// per-client rate limits.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpiredToken means the token's exp claim is in the past
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidToken means the token failed signature or claim checks
	ErrInvalidToken = errors.New("token is invalid")
)

// Claims are the fields we read from a Supabase access token
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// JWTValidator verifies Supabase access tokens. Supabase signs access
// tokens with the project's JWT secret using HS256.
type JWTValidator struct {
	secret   []byte
	audience string
}

// NewJWTValidator creates a validator for the given project secret.
func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{
		secret:   []byte(secret),
		audience: "authenticated",
	}
}

// Validate parses and verifies a raw token string and returns its claims.
func (v *JWTValidator) Validate(raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.UserID = sub
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("authorization header must be a bearer token")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", fmt.Errorf("empty bearer token")
	}
	return token, nil
}
