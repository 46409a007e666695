package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"owl/internal/api/middleware"
	"owl/internal/core/repository"
	"owl/internal/core/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func newUserHandler() (*UserHandler, service.UserService) {
	users := service.NewUserService(repository.NewInMemoryUserRepository())
	return NewUserHandler(users), users
}

// authedRequest builds a request carrying verified claims, the way the
// auth middleware would hand it to the handler.
func authedRequest(method, target, body, claimEmail string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := middleware.WithClaims(req.Context(), jwt.MapClaims{"email": claimEmail})
	return req.WithContext(ctx)
}

func TestRegisterHandler(t *testing.T) {
	h, _ := newUserHandler()

	rec := httptest.NewRecorder()
	body := `{"email":"alice@example.com","name":"Alice","photoURL":"https://example.com/a.png"}`
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var ack map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.NotEmpty(t, ack["insertedId"])

	// Duplicate email: no error status, distinct message, no insert.
	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Already Exists"}`, rec.Body.String())
}

func TestRegisterHandlerBadBody(t *testing.T) {
	h, _ := newUserHandler()

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSingleUser(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		claimEmail   string
		register     bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "missing email returns empty array",
			body:         `{}`,
			claimEmail:   "alice@example.com",
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "identity mismatch",
			body:         `{"email":"bob@example.com"}`,
			claimEmail:   "alice@example.com",
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":true,"message":"Forbidden Access"}`,
		},
		{
			name:         "unknown user",
			body:         `{"email":"alice@example.com"}`,
			claimEmail:   "alice@example.com",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":true,"message":"User not found"}`,
		},
		{
			name:         "success",
			body:         `{"email":"alice@example.com"}`,
			claimEmail:   "alice@example.com",
			register:     true,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, users := newUserHandler()
			if tt.register {
				_, err := users.Register(authedRequest(http.MethodPost, "/", "", "").Context(),
					bson.M{"email": "alice@example.com", "name": "Alice"})
				require.NoError(t, err)
			}

			rec := httptest.NewRecorder()
			h.GetSingleUser(rec, authedRequest(http.MethodGet, "/users/single-user", tt.body, tt.claimEmail))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestGetSingleUserReturnsFullRecord(t *testing.T) {
	h, users := newUserHandler()
	req := authedRequest(http.MethodGet, "/users/single-user", `{"email":"alice@example.com"}`, "alice@example.com")

	_, err := users.Register(req.Context(), bson.M{
		"email":    "alice@example.com",
		"name":     "Alice",
		"photoURL": "https://example.com/a.png",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.GetSingleUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "alice@example.com", record["email"])
	assert.Equal(t, "Alice", record["name"])
	assert.Equal(t, "https://example.com/a.png", record["photoURL"])
}

func TestMarkSolvedHandler(t *testing.T) {
	h, users := newUserHandler()
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	_, err := users.Register(ctx, bson.M{"email": "alice@example.com"})
	require.NoError(t, err)

	body := `{"email":"alice@example.com","problemId":"p1"}`

	rec := httptest.NewRecorder()
	h.MarkSolved(rec, authedRequest(http.MethodPatch, "/user/solved", body, "alice@example.com"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matchedCount":1,"modifiedCount":1}`, rec.Body.String())

	// Same problem again: short-circuit, no second append.
	rec = httptest.NewRecorder()
	h.MarkSolved(rec, authedRequest(http.MethodPatch, "/user/solved", body, "alice@example.com"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Already Solved"}`, rec.Body.String())

	user, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, user.Solved)
}

func TestMarkSolvedHandlerErrors(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		claimEmail   string
		expectedCode int
	}{
		{
			name:         "missing email returns empty array",
			body:         `{"problemId":"p1"}`,
			claimEmail:   "alice@example.com",
			expectedCode: http.StatusOK,
		},
		{
			name:         "identity mismatch",
			body:         `{"email":"bob@example.com","problemId":"p1"}`,
			claimEmail:   "alice@example.com",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "unknown user",
			body:         `{"email":"alice@example.com","problemId":"p1"}`,
			claimEmail:   "alice@example.com",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newUserHandler()
			rec := httptest.NewRecorder()
			h.MarkSolved(rec, authedRequest(http.MethodPatch, "/user/solved", tt.body, tt.claimEmail))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
