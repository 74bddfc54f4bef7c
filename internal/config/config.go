package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const relConfigPath = "sensscraper/config.yaml"

type BrowserConfig struct {
	ChromePath    string `yaml:"chrome_path,omitempty"`
	UserAgent     string `yaml:"user_agent,omitempty"`
	WaitTimeoutMS int    `yaml:"wait_timeout_ms,omitempty"`

	NavigateTimeoutMS int `yaml:"navigate_timeout_ms,omitempty"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server,omitempty"`
	SMTPPort   int    `yaml:"smtp_port,omitempty"`
	SMTPUser   string `yaml:"smtp_user,omitempty"`
	SMTPPass   string `yaml:"smtp_pass,omitempty"`
	FromEmail  string `yaml:"from_email,omitempty"`
	ToEmail    string `yaml:"to_email,omitempty"`
}

type AIConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
	Model  string `yaml:"model,omitempty"`
}

type Config struct {
	LogLevel string        `yaml:"log_level,omitempty"`
	Browser  BrowserConfig `yaml:"browser"`
	Email    EmailConfig   `yaml:"email"`
	AI       AIConfig      `yaml:"ai"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Browser: BrowserConfig{
			WaitTimeoutMS:     5000,
			NavigateTimeoutMS: 30000,
		},
		Email: EmailConfig{
			SMTPServer: "smtp.gmail.com",
			SMTPPort:   587,
		},
	}
}

// WaitTimeout returns the row wait timeout, falling back to 5s.
func (c *Config) WaitTimeout() time.Duration {
	if c.Browser.WaitTimeoutMS <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Browser.WaitTimeoutMS) * time.Millisecond
}

// NavigateTimeout returns the page load timeout, falling back to 30s.
func (c *Config) NavigateTimeout() time.Duration {
	if c.Browser.NavigateTimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Browser.NavigateTimeoutMS) * time.Millisecond
}

// AIKey returns the configured Gemini key or GEMINI_API_KEY.
func (c *Config) AIKey() string {
	if c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// SMTPPass returns the configured SMTP password or SENS_SMTP_PASS.
func (c *Config) SMTPPass() string {
	if c.Email.SMTPPass != "" {
		return c.Email.SMTPPass
	}
	return os.Getenv("SENS_SMTP_PASS")
}

// DefaultPath returns the XDG config file location, whether or not it exists.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relConfigPath)
}

// Load reads path, or the XDG config file when path is empty. A missing
// XDG file yields Default(); a missing explicit path is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(relConfigPath)
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Browser.WaitTimeoutMS < 0 {
		return fmt.Errorf("browser.wait_timeout_ms must not be negative")
	}
	if c.Browser.NavigateTimeoutMS < 0 {
		return fmt.Errorf("browser.navigate_timeout_ms must not be negative")
	}
	if c.Email.SMTPPort < 0 || c.Email.SMTPPort > 65535 {
		return fmt.Errorf("email.smtp_port %d out of range", c.Email.SMTPPort)
	}
	return nil
}
