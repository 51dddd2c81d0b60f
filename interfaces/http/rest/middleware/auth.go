package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sysmap-backend/pkg/auth"
	"sysmap-backend/pkg/common"
)

// Authenticate validates the Supabase access token on each request and
// rate-limits by client IP before touching the token at all.
func Authenticate(validator *auth.JWTValidator, limiter *auth.IPRateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			allowed, err := limiter.Allow(r.Context(), clientIP)
			if err != nil {
				logger.Error("Rate limiter error", zap.Error(err))
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !allowed {
				respondWithError(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			token, err := auth.ExtractBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				respondUnauthorized(w, err.Error())
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				logger.Warn("Invalid token",
					zap.Error(err),
					zap.String("ip", clientIP),
					zap.String("path", r.URL.Path),
				)
				if errors.Is(err, auth.ErrExpiredToken) {
					respondUnauthorized(w, "Token has expired")
				} else {
					respondUnauthorized(w, "Invalid token")
				}
				return
			}

			ctx := common.WithUserID(r.Context(), claims.UserID)
			if claims.Role != "" {
				ctx = common.WithUserRoles(ctx, []string{claims.Role})
			}

			logger.Debug("Request authenticated",
				zap.String("user_id", claims.UserID),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getClientIP extracts the client IP address
func getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(w http.ResponseWriter, message string) {
	respondWithError(w, http.StatusUnauthorized, message)
}

// respondWithError sends an error response with a specific status code
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    code,
	})
}
