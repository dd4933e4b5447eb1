package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

type AuthHandler struct {
	AuthUC *usecase.AuthenticateUseCase
}

func NewAuthHandler(authUC *usecase.AuthenticateUseCase) *AuthHandler {
	return &AuthHandler{AuthUC: authUC}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// HandleLogin (POST /auth/login) exchanges static credentials for a session
// token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, token, err := h.AuthUC.Execute(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{User: user, Token: token})
}
