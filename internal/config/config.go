// File: internal/config/config.go
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// OAuthConfig holds the password-grant client registered with the external
// identity provider.
type OAuthConfig struct {
	TokenURL     string `env:"OAUTH_LOGIN_ENDPOINT,required"`
	ClientID     string `env:"OAUTH_CLIENT_ID,required"`
	ClientSecret string `env:"OAUTH_CLIENT_SECRET,required"`
}

type Config struct {
	DatabaseURL    string `env:"DATABASE_URL,required"`
	RedisAddr      string `env:"REDIS_ADDR,required"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	OAuth          OAuthConfig
	RecordsPerPage int `env:"NO_OF_RECORDS_PER_PAGE" envDefault:"10"`
}

// Load reads a .env file if present, then parses configuration from the
// environment. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
