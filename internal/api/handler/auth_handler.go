package handler

import (
	"encoding/json"
	"net/http"

	"owl/internal/token"
)

type AuthHandler struct {
	tokens token.Service
}

func NewAuthHandler(tokens token.Service) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs whatever claim object the client submits. There is no
// check that the caller owns the identity it claims; see the token
// package.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var claims map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	signed, err := h.tokens.Issue(claims)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: signed})
}
