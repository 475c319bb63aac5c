package handlers

import (
	"encoding/json"
	"kamion-client/internal/api/dto"
	"kamion-client/internal/domain"
	"net/http"

	"go.uber.org/zap"
)

// Error codes carried in the envelope's error_code field.
const (
	codeValidation   = 1001
	codeCredentials  = 1002
	codeUnauthorized = 1003
	codeInternal     = 1500
	codeMethod       = 1405
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeData(w http.ResponseWriter, r *http.Request, data any, meta *domain.Pagination) {
	writeJSON(w, r, http.StatusOK, dto.Envelope{
		Success: true,
		Status:  http.StatusOK,
		Data:    data,
		Meta:    meta,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code int, msg string) {
	writeJSON(w, r, status, dto.Envelope{
		Success:   false,
		Status:    status,
		Message:   &msg,
		ErrorCode: code,
		Data:      nil,
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, r, http.StatusMethodNotAllowed, codeMethod, "method not allowed")
}
