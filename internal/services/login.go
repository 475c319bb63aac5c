package services

import (
	"context"
	"errors"
	"fmt"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Login checks credentials and issues a new opaque bearer token.
func Login(
	ctx context.Context,
	email string,
	password string,
	users ports.UserRepository,
	sessions ports.SessionStore,
) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, ErrInvalidCredentials
	}

	user, ok, err := users.Authenticate(ctx, email, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return domain.Session{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := sessions.Put(ctx, token, user.ID); err != nil {
		return domain.Session{}, fmt.Errorf("login: store session: %w", err)
	}

	return domain.Session{User: user, Token: token}, nil
}
