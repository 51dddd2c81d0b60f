package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-project-key"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-123",
		"aud":   "authenticated",
		"email": "dev@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestValidateAcceptsSupabaseToken(t *testing.T) {
	v := NewJWTValidator(testSecret)

	claims, err := v.Validate(signToken(t, testSecret, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	v := NewJWTValidator(testSecret)

	_, err := v.Validate(signToken(t, "some-other-secret", validClaims()))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	v := NewJWTValidator(testSecret)

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	_, err := v.Validate(signToken(t, testSecret, claims))
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsWrongAudience(t *testing.T) {
	v := NewJWTValidator(testSecret)

	claims := validClaims()
	claims["aud"] = "anon"

	_, err := v.Validate(signToken(t, testSecret, claims))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRequiresSubject(t *testing.T) {
	v := NewJWTValidator(testSecret)

	claims := validClaims()
	delete(claims, "sub")

	_, err := v.Validate(signToken(t, testSecret, claims))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "empty token", header: "Bearer   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
