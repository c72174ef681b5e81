package forum

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the process configuration, established once at startup and
// read-only afterwards.
type EnvConfig struct {
	SigningKey  string `env:"JWT_SECRET,required,notEmpty"`
	SessionTTL  int    `env:"SESSION_TTL" envDefault:"86400000"`
	CookieName  string `env:"SESSION_COOKIE" envDefault:"t"`
	TokenLookup string `env:"TOKEN_LOOKUP"`
	DSN         string `env:"DATABASE_DSN" envDefault:"file::memory:?cache=shared"`
	Port        string `env:"PORT" envDefault:"4000"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"dist"`
	Debug       bool   `env:"DEBUG"`
}

var _ Config = (*EnvConfig)(nil)

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *EnvConfig) GetSigningKey() string {
	return c.SigningKey
}

// GetSessionTTL is the cookie lifetime in milliseconds.
func (c *EnvConfig) GetSessionTTL() int {
	return c.SessionTTL
}

func (c *EnvConfig) GetCookieName() string {
	return c.CookieName
}

func (c *EnvConfig) GetTokenLookup() string {
	return c.TokenLookup
}
