package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dtaoOfficial/Interview/internal/model"
)

type authService interface {
	Login(ctx context.Context, email string, password string) (model.LoginResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.Admin, error)
}

type AuthHandler struct {
	auth authService
}

func NewAuthHandler(auth authService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login issues a bearer token. The success and failure shapes are part
// of the admin portal's wire contract: success is a bare JSON object
// with email, token and message, failure is a plain-text 401. Both
// unknown email and wrong password produce the identical failure.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid credentials"))
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	admin, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, admin)
}
