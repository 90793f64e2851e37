package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// SwaggerExportPath, when set, makes the server write its OpenAPI
	// document to this file at startup.
	SwaggerExportPath string `env:"SWAGGER_EXPORT_PATH"`

	Sampler SamplerConfig
}

type SamplerConfig struct {
	// MaxDepth caps the depth budget accepted per request. Requests above
	// it are rejected, never clamped.
	MaxDepth     int `env:"SAMPLER_MAX_DEPTH,     default=8"`
	DefaultDepth int `env:"SAMPLER_DEFAULT_DEPTH, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
