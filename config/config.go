package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Memo client specifics
	Remote   RemoteConfig
	Fallback FallbackConfig
	Session  SessionConfig
	CORS     CORSConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required,oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port int    `validate:"required,min=1,max=65535"`
	Mode string `validate:"required,oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string `validate:"required,oneof=debug info warn error dpanic panic fatal"`
	Mode         string `validate:"required"`
	Encoding     string `validate:"required,oneof=console json"`
	ColorEnabled bool
}

// RemoteConfig points at the memo API. An empty access token sends no
// Authorization header.
type RemoteConfig struct {
	BaseURL         string  `validate:"required,url"`
	AccessToken     string
	RateLimitPerSec float64 `validate:"gte=0"`
	Burst           int     `validate:"gte=0"`
}

type FallbackConfig struct {
	Driver string `validate:"required,oneof=file sqlite"`
	Path   string `validate:"required"`
	Slot   string `validate:"required"`
}

type SessionConfig struct {
	CacheSize int `validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper. A .env file in the working directory
// is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/memo/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/memo/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Remote API
	cfg.Remote.BaseURL = strings.TrimRight(v.GetString("remote.base_url"), "/")
	cfg.Remote.AccessToken = v.GetString("remote.access_token")
	cfg.Remote.RateLimitPerSec = v.GetFloat64("remote.rate_limit_per_sec")
	cfg.Remote.Burst = v.GetInt("remote.burst")

	// Local fallback
	cfg.Fallback.Driver = v.GetString("fallback.driver")
	cfg.Fallback.Path = v.GetString("fallback.path")
	cfg.Fallback.Slot = v.GetString("fallback.slot")

	cfg.Session.CacheSize = v.GetInt("session.cache_size")

	// Env values arrive as one comma separated string
	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("remote.base_url", "http://localhost:3000")
	v.SetDefault("remote.rate_limit_per_sec", 0)
	v.SetDefault("remote.burst", 1)

	v.SetDefault("fallback.driver", "file")
	v.SetDefault("fallback.path", "./data")
	v.SetDefault("fallback.slot", "memos")

	v.SetDefault("session.cache_size", 256)
	v.SetDefault("cors.allowed_origins", []string{})
}

func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
