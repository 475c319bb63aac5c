package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"kamion-client/internal/api/dto"
	"kamion-client/internal/ports"
	"kamion-client/internal/services"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// AuthHandler serves login and guards the authenticated routes.
type AuthHandler struct {
	Users    ports.UserRepository
	Sessions ports.SessionStore
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.LoginRequest

	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, codeValidation, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, r, http.StatusUnprocessableEntity, codeValidation, "E-posta ve şifre zorunludur")
		return
	}

	session, err := services.Login(r.Context(), req.Email, req.Password, h.Users, h.Sessions)
	if errors.Is(err, services.ErrInvalidCredentials) {
		writeError(w, r, http.StatusUnprocessableEntity, codeCredentials, "E-posta adresi veya şifre hatalı")
		return
	}
	if err != nil {
		zap.L().Error("login failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, codeInternal, "internal server error")
		return
	}

	writeData(w, r, dto.LoginData{AuthUser: session.User, Token: session.Token}, nil)
}

// RequireBearer rejects requests without a known bearer token.
func (h *AuthHandler) RequireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, r, http.StatusUnauthorized, codeUnauthorized, "Unauthenticated.")
			return
		}

		userID, found, err := h.Sessions.Lookup(r.Context(), token)
		if err != nil {
			zap.L().Error("session lookup failed", zap.Error(err))
			writeError(w, r, http.StatusInternalServerError, codeInternal, "internal server error")
			return
		}
		if !found {
			writeError(w, r, http.StatusUnauthorized, codeUnauthorized, "Unauthenticated.")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	}
}
