// Package config loads and validates connector configuration from
// YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Load and Validate.
var (
	ErrNotFound   = errors.New("config file not found")
	ErrInvalid    = errors.New("invalid config")
	ErrNoEndpoint = errors.New("endpoint is required")
	ErrNoUsername = errors.New("username is required")
	ErrNoPassword = errors.New("password is required")
)

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Config is the full connector configuration.
type Config struct {
	// Endpoint is the base URL the remote services live under.
	Endpoint string `yaml:"endpoint" json:"endpoint"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`

	// TimeoutMs bounds each SOAP round trip.
	TimeoutMs int    `yaml:"timeoutMs" json:"timeoutMs"`
	UserAgent string `yaml:"userAgent" json:"userAgent"`

	// NumericBoolParams names the parameters whose booleans serialize
	// as "1"/"0". This applies to flat positional parameters only;
	// operations with nested request objects send these flags as
	// textual "true"/"false" alongside the object, independent of this
	// list.
	NumericBoolParams []string `yaml:"numericBoolParams" json:"numericBoolParams"`
	// BenignStatusCodes maps operation names to status codes that mean
	// "no data" rather than failure, on top of built-in defaults.
	BenignStatusCodes map[string][]int `yaml:"benignStatusCodes" json:"benignStatusCodes"`

	// RequestLogSize bounds the in-memory request log.
	RequestLogSize int `yaml:"requestLogSize" json:"requestLogSize"`

	Log LogConfig `yaml:"log" json:"log"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		TimeoutMs:      30000,
		RequestLogSize: 500,
		NumericBoolParams: []string{
			"enableNullOrEmptyValues",
			"overrideExistingPriceLines",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// FromEnv overlays the PLUNET_* environment variables. Values already
// set in the config win only when the variable is unset.
func (c *Config) FromEnv() {
	setIfEmpty(&c.Endpoint, "PLUNET_ENDPOINT")
	setIfEmpty(&c.Username, "PLUNET_USERNAME")
	setIfEmpty(&c.Password, "PLUNET_PASSWORD")
	setIfEmpty(&c.UserAgent, "PLUNET_USER_AGENT")
}

func setIfEmpty(dst *string, env string) {
	if *dst == "" {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.TimeoutMs <= 0 {
		c.TimeoutMs = 30000
	}
	if c.RequestLogSize <= 0 {
		c.RequestLogSize = 500
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks that the config can drive real calls.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return ErrNoEndpoint
	}
	if c.Username == "" {
		return ErrNoUsername
	}
	if c.Password == "" {
		return ErrNoPassword
	}
	return nil
}

// Timeout returns the per-call timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
