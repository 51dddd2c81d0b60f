package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleMapsAppErrorToStatus(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/systems/x", nil)

	h.Handle(rec, req, NewNotFoundError("system"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Error)
	assert.Equal(t, string(ErrorTypeNotFound), resp.Type)
	assert.Contains(t, resp.Message, "system not found")
}

func TestHandleHidesPlainErrorsOutsideDebug(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := httptest.NewRecorder()
	NewErrorHandler(zap.NewNop(), false).Handle(rec, req, errors.New("pg: secret detail"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")

	rec = httptest.NewRecorder()
	NewErrorHandler(zap.NewNop(), true).Handle(rec, req, errors.New("pg: secret detail"))
	assert.Contains(t, rec.Body.String(), "secret detail")
}

func TestHandleStatus(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	h.HandleStatus(rec, req, http.StatusTooManyRequests, "slow down")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, string(ErrorTypeRateLimit), resp.Type)
	assert.Equal(t, "slow down", resp.Message)
}

func TestMiddlewareRecoversPanics(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, string(ErrorTypeInternal), resp.Type)
}
