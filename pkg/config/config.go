package config

import (
	"github.com/kelseyhightower/envconfig"

	pkgredis "github.com/medplus/storefront/pkg/redis"
)

type Config struct {
	AppEnv    string `split_words:"true" default:"dev"`
	LogLevel  string `split_words:"true" default:"info"`
	SessionID string `split_words:"true" default:"local"`
	KeyPrefix string `split_words:"true" default:"medicalplus:"`

	Redis pkgredis.Config `envconfig:"REDIS"`
}

// Load reads configuration from STOREFRONT_*-prefixed environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
