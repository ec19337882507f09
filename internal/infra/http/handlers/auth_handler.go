package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/permitwatch/lead-portal/internal/auth"
	"github.com/permitwatch/lead-portal/internal/entity"
	"github.com/permitwatch/lead-portal/internal/infra/http/middleware"
)

type AuthHandler struct {
	Auth        *auth.Service
	rateLimiter *RateLimiter
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{
		Auth:        svc,
		rateLimiter: NewRateLimiter(20, time.Minute), // per IP, login only
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string             `json:"token"`
	User  entity.UserSummary `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		middleware.RecordAuthFailure()
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("[AUTH] login failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	user, err := h.Auth.Verify(r.Context(), token)
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		middleware.RecordAuthFailure()
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	case errors.Is(err, auth.ErrUserNotFound):
		middleware.RecordAuthFailure()
		writeError(w, http.StatusUnauthorized, "User not found")
		return
	case err != nil:
		log.Printf("[AUTH] verify failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]entity.UserSummary{"user": user})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
