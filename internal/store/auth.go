package store

import (
	"context"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
	"sync"

	"go.uber.org/zap"
)

type AuthState struct {
	User            *domain.AuthUser
	Token           string
	IsLoading       bool
	Error           string
	IsAuthenticated bool
}

// AuthSlice owns the session. It is the only writer of the gateway's
// bearer credential.
type AuthSlice struct {
	mu      sync.Mutex
	state   AuthState
	seq     uint64
	gateway AuthGateway
	notify  func()
}

func NewAuthSlice(gateway AuthGateway, notify func()) *AuthSlice {
	return &AuthSlice{gateway: gateway, notify: notifyOrNop(notify)}
}

func (s *AuthSlice) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// Login performs idle -> pending -> authenticated|failed. Credentials are
// not validated here; callers check for empty fields before dispatching.
// The returned error is also stored, as a message, in State().Error.
func (s *AuthSlice) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()

	session, err := s.gateway.Login(ctx, email, password)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return ErrSuperseded
	}

	s.state.IsLoading = false
	if err != nil {
		s.state.IsAuthenticated = false
		s.state.Error = ports.ErrorMessage(err, msgLoginFailed)
		s.mu.Unlock()
		s.notify()

		zap.L().Info("login failed", zap.String("email", email), zap.Error(err))
		return err
	}

	user := session.User
	s.state.User = &user
	s.state.Token = session.Token
	s.state.IsAuthenticated = true
	s.state.Error = ""
	s.gateway.SetToken(session.Token)
	s.mu.Unlock()
	s.notify()

	zap.L().Info("login succeeded", zap.Int("user_id", user.ID))
	return nil
}

// Logout clears the session and deregisters the bearer credential. A login
// still in flight is invalidated.
func (s *AuthSlice) Logout() {
	s.mu.Lock()
	s.seq++
	s.state = AuthState{}
	s.gateway.SetToken("")
	s.mu.Unlock()
	s.notify()
}

func (s *AuthSlice) ClearError() {
	s.mu.Lock()
	changed := s.state.Error != ""
	s.state.Error = ""
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// SetToken restores a session from a previously issued token.
func (s *AuthSlice) SetToken(token string) {
	s.mu.Lock()
	s.state.Token = token
	s.state.IsAuthenticated = true
	s.gateway.SetToken(token)
	s.mu.Unlock()
	s.notify()
}
