package kamion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"kamion-client/internal/platform/obs"
	"kamion-client/internal/ports"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.defaultHeaders() {
		req.Header.Set(k, v)
	}
	if id := obs.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends req and turns any status >= 400 into a *ports.StatusError.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()

		se := &ports.StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
		var env struct {
			Message *string `json:"message"`
		}
		if json.Unmarshal(b, &env) == nil && env.Message != nil {
			se.Message = *env.Message
		}

		c.logStatus(req, se)
		return nil, se
	}
	return resp, nil
}

// 401 is only reported; the session is left to the caller.
func (c *Client) logStatus(req *http.Request, se *ports.StatusError) {
	fields := []zap.Field{
		zap.String("req_id", req.Header.Get("X-Request-ID")),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", se.Code),
		zap.String("message", se.Message),
	}
	if se.Code == http.StatusUnauthorized {
		zap.L().Warn("unauthorized response, token may be invalid", fields...)
		return
	}
	zap.L().Error("api error", fields...)
}

// doWithRetry retries transient failures (network errors, 429/5xx responses)
// using exponential backoff while respecting context cancellation.
// With retryAttempts == 1 it is a single attempt.
func (c *Client) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	maxAttempts := c.retryAttempts
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var se *ports.StatusError
		if errors.As(err, &se) {
			switch se.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
