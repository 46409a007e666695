package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"owl/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	tokens := token.NewHMACService("test-secret")
	valid, err := tokens.Issue(map[string]interface{}{"email": "alice@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		expectedCode  int
	}{
		{
			name:          "missing header",
			authorization: "",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "header without token part",
			authorization: "Bearer",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "garbage token",
			authorization: "Bearer not-a-token",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name:          "valid token",
			authorization: "Bearer " + valid,
			expectedCode:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := ClaimsFromContext(r.Context())
				require.True(t, ok)
				sawEmail, _ = claims["email"].(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/single-user", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(tokens).Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "alice@example.com", sawEmail)
			} else {
				assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, rec.Body.String())
			}
		})
	}
}
