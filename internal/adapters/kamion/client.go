package kamion

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL = "https://api.dev.kamion.co/api"
	DefaultTimeout = 10 * time.Second
)

// Options configure a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RetryAttempts > 1 enables retries of GET requests on transient failures.
	RetryAttempts int
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client is the gateway to the Kamion REST backend.
//
// It owns the default header map (including the bearer credential), maps
// the response envelope to typed results and collapses identical
// concurrent GETs into one round trip.
//
// The client is safe for concurrent use.
type Client struct {
	session       *http.Client
	baseURL       string
	retryAttempts int

	mu      sync.RWMutex
	headers map[string]string

	inflight singleflight.Group
}

func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, errors.New("kamion base url must be http(s)")
	}

	session := opts.HTTPClient
	if session == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		session = &http.Client{Timeout: timeout}
	}

	attempts := opts.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Client{
		session:       session,
		baseURL:       base,
		retryAttempts: attempts,
		headers: map[string]string{
			"Accept": "application/json",
		},
	}, nil
}

// SetToken registers token as the bearer credential for subsequent
// requests; an empty token removes it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == "" {
		delete(c.headers, "Authorization")
		return
	}
	c.headers["Authorization"] = "Bearer " + token
}

// Token returns the registered bearer token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimPrefix(c.headers["Authorization"], "Bearer ")
}

func (c *Client) defaultHeaders() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		out[k] = v
	}
	return out
}
