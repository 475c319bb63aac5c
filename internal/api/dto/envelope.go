package dto

import "kamion-client/internal/domain"

// Envelope is the wrapper around every response of the API.
type Envelope struct {
	Success   bool               `json:"success"`
	Status    int                `json:"status"`
	Message   *string            `json:"message"`
	ErrorCode int                `json:"error_code"`
	Data      any                `json:"data"`
	Meta      *domain.Pagination `json:"meta,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the user record with the issued token alongside.
type LoginData struct {
	domain.AuthUser
	Token string `json:"token"`
}
