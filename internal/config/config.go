package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL       = "https://api.dev.kamion.co/api"
	DefaultTimeout       = 10 * time.Second
	DefaultDebounceDelay = 500 * time.Millisecond
	DefaultSplashDelay   = 2 * time.Second
)

// Config holds the client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Search  SearchConfig  `yaml:"search"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Session SessionConfig `yaml:"session"`
}

// APIConfig configures the backend gateway. It is fixed for the process
// lifetime; nothing renegotiates it at runtime.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// RetryAttempts > 1 retries idempotent GETs on 429/5xx/network errors.
	RetryAttempts int `yaml:"retry_attempts"`
}

type SearchConfig struct {
	DebounceDelay time.Duration `yaml:"debounce_delay"`
	PerPage       int           `yaml:"per_page"` // 0 lets the backend decide
}

type UIConfig struct {
	SplashDelay time.Duration `yaml:"splash_delay"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SessionConfig can restore a previous login without the login screen.
type SessionConfig struct {
	Token string `yaml:"token"`
	Email string `yaml:"email"`
}

func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:       DefaultBaseURL,
			Timeout:       DefaultTimeout,
			RetryAttempts: 1,
		},
		Search: SearchConfig{
			DebounceDelay: DefaultDebounceDelay,
		},
		UI: UIConfig{
			SplashDelay: DefaultSplashDelay,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "kamion.log",
		},
	}
}

// LoadEnvFile loads .env into the process environment. A missing file is not an error.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the YAML file at path (optional) on top of the defaults and
// then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("KAMION_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("KAMION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("KAMION_TIMEOUT: %w", err)
		}
		c.API.Timeout = d
	}
	if v := os.Getenv("KAMION_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KAMION_RETRY_ATTEMPTS: %w", err)
		}
		c.API.RetryAttempts = n
	}
	if v := os.Getenv("KAMION_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("KAMION_DEBOUNCE: %w", err)
		}
		c.Search.DebounceDelay = d
	}
	if v := os.Getenv("KAMION_PER_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KAMION_PER_PAGE: %w", err)
		}
		c.Search.PerPage = n
	}
	if v := os.Getenv("KAMION_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv("KAMION_LOG_FILE"); ok {
		c.Logging.File = v
	}
	if v := os.Getenv("KAMION_TOKEN"); v != "" {
		c.Session.Token = v
	}
	if v := os.Getenv("KAMION_EMAIL"); v != "" {
		c.Session.Email = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", base)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RetryAttempts < 1 {
		return fmt.Errorf("api.retry_attempts must be at least 1, got %d", c.API.RetryAttempts)
	}
	if c.Search.DebounceDelay <= 0 {
		return fmt.Errorf("search.debounce_delay must be positive, got %s", c.Search.DebounceDelay)
	}
	if c.Search.PerPage < 0 || c.Search.PerPage > 100 {
		return fmt.Errorf("search.per_page must be between 0 and 100, got %d", c.Search.PerPage)
	}
	if c.UI.SplashDelay < 0 {
		return fmt.Errorf("ui.splash_delay must not be negative, got %s", c.UI.SplashDelay)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
