package kamion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"kamion-client/internal/domain"
	"kamion-client/internal/platform/obs"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// The login payload is the user record with the token alongside.
type loginData struct {
	domain.AuthUser
	Token string `json:"token"`
}

// Login exchanges credentials for a session. It does not register the
// token; that is left to the caller (see SetToken).
func (c *Client) Login(ctx context.Context, email, password string) (_ domain.Session, err error) {
	ctx = obs.WithRequestID(ctx)
	defer obs.Time(ctx, "kamion.Login")(&err)

	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: encode body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/admin/login", bytes.NewReader(body))
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	data, err := decodeData[loginData](env, "login data")
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if data.Token == "" {
		return domain.Session{}, errors.New("login: response carried no token")
	}

	return domain.Session{User: data.AuthUser, Token: data.Token}, nil
}
