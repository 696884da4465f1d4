package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the break-even comparator.
type Config struct {
	// Tesouro Direto endpoints (configurable for testing)
	PageURL string `mapstructure:"page_url"`
	APIURL  string `mapstructure:"api_url"`

	// HTTP behaviour of the fetcher
	UserAgent         string        `mapstructure:"user_agent"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	RunTimeout        time.Duration `mapstructure:"run_timeout"`
	RetryCount        int           `mapstructure:"retry_count"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`

	// UseSample skips the network entirely
	UseSample bool `mapstructure:"use_sample"`
	// FallbackToSample substitutes sample bonds when extraction comes up short
	FallbackToSample bool `mapstructure:"fallback_to_sample"`

	LogLevel string `mapstructure:"log_level"`
}

const (
	defaultPageURL   = "https://www.tesourodireto.com.br/titulos/precos-e-taxas.htm"
	defaultAPIURL    = "https://www.tesourodireto.com.br/json/br/com/b3/tesourodireto/service/api/treasurybondsinfo.json"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory or $HOME/.breakeven.
// Environment variables take precedence over config file values.
//
// Recognised environment variables:
//   - BREAKEVEN_PAGE_URL
//   - BREAKEVEN_API_URL
//   - BREAKEVEN_USER_AGENT
//   - BREAKEVEN_REQUEST_TIMEOUT (e.g. "15s")
//   - BREAKEVEN_RUN_TIMEOUT
//   - BREAKEVEN_RETRY_COUNT
//   - BREAKEVEN_REQUESTS_PER_SECOND (0 disables throttling)
//   - BREAKEVEN_USE_SAMPLE
//   - BREAKEVEN_FALLBACK_TO_SAMPLE
//   - BREAKEVEN_LOG_LEVEL (debug, info, warn, error)
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.breakeven")

	// A missing config file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile reads configuration from an explicit YAML file, still
// honouring environment overrides.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("page_url", defaultPageURL)
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("user_agent", defaultUserAgent)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("run_timeout", 2*time.Minute)
	v.SetDefault("retry_count", 3)
	v.SetDefault("requests_per_second", 1.0)
	v.SetDefault("use_sample", false)
	v.SetDefault("fallback_to_sample", true)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("breakeven")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("page_url", "BREAKEVEN_PAGE_URL")
	v.BindEnv("api_url", "BREAKEVEN_API_URL")
	v.BindEnv("user_agent", "BREAKEVEN_USER_AGENT")
	v.BindEnv("request_timeout", "BREAKEVEN_REQUEST_TIMEOUT")
	v.BindEnv("run_timeout", "BREAKEVEN_RUN_TIMEOUT")
	v.BindEnv("retry_count", "BREAKEVEN_RETRY_COUNT")
	v.BindEnv("requests_per_second", "BREAKEVEN_REQUESTS_PER_SECOND")
	v.BindEnv("use_sample", "BREAKEVEN_USE_SAMPLE")
	v.BindEnv("fallback_to_sample", "BREAKEVEN_FALLBACK_TO_SAMPLE")
	v.BindEnv("log_level", "BREAKEVEN_LOG_LEVEL")

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var problems []string

	for name, raw := range map[string]string{"page_url": c.PageURL, "api_url": c.APIURL} {
		u, err := url.Parse(raw)
		if raw == "" || err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("%s must be an absolute URL (got %q)", name, raw))
		}
	}

	if c.RetryCount < 0 {
		problems = append(problems, "retry_count must not be negative")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "request_timeout must be positive")
	}
	if c.RunTimeout <= 0 {
		problems = append(problems, "run_timeout must be positive")
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if !slices.Contains(validLogLevels, c.LogLevel) {
		problems = append(problems, fmt.Sprintf("log_level must be one of %s (got %q)",
			strings.Join(validLogLevels, ", "), c.LogLevel))
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}
