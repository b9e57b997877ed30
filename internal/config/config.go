package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Constants for default settings
const (
	defaultPort             = 3000
	defaultMaxSize          = 100.0 // MiB, advertised to users only
	defaultSessionTTL       = 24 * time.Hour
	defaultSessionCacheSize = 1024
	envPrefix               = "SHARE"
)

// Config represents the application configuration
type Config struct {
	Port             int           `mapstructure:"port" json:"port"`
	UploadURL        string        `mapstructure:"upload_url" json:"upload_url"`               // Backend upload endpoint
	ListURL          string        `mapstructure:"list_url" json:"list_url"`                   // Backend list endpoint
	DownloadBaseURL  string        `mapstructure:"download_base_url" json:"download_base_url"` // Prefix of retrieval locators
	MaxSize          float64       `mapstructure:"max_size_mib" json:"max_size_mib"`           // Advertised upload limit in MiB
	RequestTimeout   time.Duration `mapstructure:"request_timeout" json:"request_timeout"`     // 0 disables the client timeout
	SessionTTL       time.Duration `mapstructure:"session_ttl" json:"session_ttl"`
	SessionCacheSize int           `mapstructure:"session_cache_size" json:"session_cache_size"`
	MetricsEnabled   bool          `mapstructure:"metrics_enabled" json:"metrics_enabled"`
	LogLevel         string        `mapstructure:"log_level" json:"log_level"`
}

// SetDefaults registers every key so environment overrides are picked up
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("upload_url", "")
	v.SetDefault("list_url", "")
	v.SetDefault("download_base_url", "")
	v.SetDefault("max_size_mib", defaultMaxSize)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("session_ttl", defaultSessionTTL)
	v.SetDefault("session_cache_size", defaultSessionCacheSize)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// LoadConfig loads a configuration from a YAML file, applying defaults and SHARE_* overrides
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return FromViper(v)
}

// FromViper decodes and validates a configuration from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every backend location is configured and absolute
func (c *Config) Validate() error {
	endpoints := []struct {
		key   string
		value string
	}{
		{"upload_url", c.UploadURL},
		{"list_url", c.ListURL},
		{"download_base_url", c.DownloadBaseURL},
	}

	for _, ep := range endpoints {
		if ep.value == "" {
			return fmt.Errorf("%s is required", ep.key)
		}
		u, err := url.Parse(ep.value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", ep.key, ep.value)
		}
	}

	if c.MaxSize <= 0 {
		return fmt.Errorf("max_size_mib must be greater than 0")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}

	return nil
}

// MaxSizeToBytes returns the advertised upload limit in bytes
func (c *Config) MaxSizeToBytes() int64 {
	return int64(c.MaxSize * 1024 * 1024)
}

// MaxSizeLabel renders the advertised limit for display, e.g. "100 MB"
func (c *Config) MaxSizeLabel() string {
	if c.MaxSize == float64(int64(c.MaxSize)) {
		return fmt.Sprintf("%d MB", int64(c.MaxSize))
	}
	return fmt.Sprintf("%.1f MB", c.MaxSize)
}
