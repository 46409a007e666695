package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"owl/internal/token"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsContextKey contextKey = "claims"

type AuthMiddleware struct {
	tokens token.Service
}

func NewAuthMiddleware(tokens token.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate gates identity-scoped routes. A missing header or a token
// that fails verification terminates the request with 401; on success the
// decoded claims ride the request context into the handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			unauthorized(w)
			return
		}

		parts := strings.Split(auth, " ")
		if len(parts) < 2 {
			unauthorized(w)
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// WithClaims returns a context carrying verified token claims.
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the claims attached by Authenticate.
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(jwt.MapClaims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": "unauthorized access",
	})
}
