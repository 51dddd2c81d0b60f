package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsSetTypeAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		typ    ErrorType
		status int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("system"), ErrorTypeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorizedError(""), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"rate limit", NewRateLimitError(300, "minute"), ErrorTypeRateLimit, http.StatusTooManyRequests},
		{"database", NewDatabaseError("get_system", errors.New("boom")), ErrorTypeDatabase, http.StatusInternalServerError},
		{"external", NewExternalError("layout", errors.New("down")), ErrorTypeExternal, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := NewDatabaseError("get_system", errors.New("connection refused"))
	assert.Contains(t, err.Error(), "DATABASE")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetAppErrorUnwrapsChain(t *testing.T) {
	base := NewNotFoundError("interface")
	wrapped := fmt.Errorf("query failed: %w", base)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type)

	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(nil))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("system")))
	assert.True(t, IsValidation(NewValidationError("bad")))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("")))
	assert.False(t, IsNotFound(NewValidationError("bad")))
}

func TestWrapPreservesAppError(t *testing.T) {
	base := NewNotFoundError("system")
	wrapped := Wrap(base, "resolving subtree")

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type, "wrapping must not change the type")
	assert.Contains(t, got.Message, "resolving subtree")
}

func TestWrapPlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(errors.New("boom"), "loading graph")

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeInternal, got.Type)
	assert.EqualError(t, got.Cause, "boom")

	assert.Nil(t, Wrap(nil, "no-op"))
}

func TestBuilderChain(t *testing.T) {
	err := NewValidationError("category is invalid").
		WithCode("INVALID_CATEGORY").
		WithDetails(map[string]interface{}{"field": "category"})

	assert.Equal(t, "INVALID_CATEGORY", err.Code)
	assert.Equal(t, "category", err.Details["field"])
}
