package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Routing engine specifics
	Routing   RoutingConfig
	Knowledge KnowledgeConfig
	Feedback  FeedbackConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RoutingConfig points at an optional catalog override file. When the
// path is empty the compiled-in catalog is used as-is.
type RoutingConfig struct {
	CatalogFile string
}

type KnowledgeConfig struct {
	Enabled   bool
	CacheSize int
	CacheTTL  string
}

type FeedbackConfig struct {
	WindowSize int
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Routing engine
	cfg.Routing.CatalogFile = viper.GetString("routing.catalog_file")
	if catalogFile := viper.GetString("routing_catalog_file"); catalogFile != "" {
		cfg.Routing.CatalogFile = catalogFile
	}

	cfg.Knowledge.Enabled = viper.GetBool("knowledge.enabled")
	cfg.Knowledge.CacheSize = viper.GetInt("knowledge.cache_size")
	cfg.Knowledge.CacheTTL = viper.GetString("knowledge.cache_ttl")

	cfg.Feedback.WindowSize = viper.GetInt("feedback.window_size")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("routing.catalog_file", "")
	viper.SetDefault("knowledge.enabled", true)
	viper.SetDefault("knowledge.cache_size", 512)
	viper.SetDefault("knowledge.cache_ttl", "5m")
	viper.SetDefault("feedback.window_size", 1024)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)
}
