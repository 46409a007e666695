package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"owl/internal/api/middleware"
	"owl/internal/core/service"

	"go.mongodb.org/mongo-driver/bson"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

type insertAck struct {
	InsertedID interface{} `json:"insertedId"`
}

type updateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Register stores the submitted user document. A duplicate email is a
// distinct success-shaped outcome, not an error status.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.users.Register(r.Context(), doc)
	if errors.Is(err, service.ErrAlreadyRegistered) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Already Exists"})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, insertAck{InsertedID: id})
}

type emailRequest struct {
	Email string `json:"email"`
}

// GetSingleUser returns the caller's own record. The email still travels
// in the request body rather than the path, which the frontend relies on.
func (h *UserHandler) GetSingleUser(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" {
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}

	if !claimMatches(r, req.Email) {
		writeError(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type solvedRequest struct {
	Email     string `json:"email"`
	ProblemID string `json:"problemId"`
}

// MarkSolved appends a problem id to the caller's solved list. Repeat
// submissions of the same id are no-ops.
func (h *UserHandler) MarkSolved(w http.ResponseWriter, r *http.Request) {
	var req solvedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" {
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}

	if !claimMatches(r, req.Email) {
		writeError(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	err := h.users.MarkSolved(r.Context(), req.Email, req.ProblemID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrAlreadySolved):
		writeJSON(w, http.StatusOK, messageResponse{Message: "Already Solved"})
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, updateAck{MatchedCount: 1, ModifiedCount: 1})
	}
}

// claimMatches checks the verified token identity against the requested
// resource identity.
func claimMatches(r *http.Request, email string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return false
	}
	decoded, _ := claims["email"].(string)
	return decoded == email
}
