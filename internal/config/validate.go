package config

import (
	"fmt"
	"strings"
)

const minSessionSecretLength = 16

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < minSessionSecretLength {
		return fmt.Errorf("session.secret must be at least %d characters (got %d)", minSessionSecretLength, len(c.Session.Secret))
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %v)", c.Session.TTL)
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		return fmt.Errorf("session.cookie_name is required")
	}

	if err := c.Admin.validate(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	if err := c.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	if c.RateLimit.SubmitPerMinute < 0 || c.RateLimit.LoginPerMinute < 0 {
		return fmt.Errorf("rate_limit: limits must be >= 0")
	}
	if _, err := c.RateLimit.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (a *AdminConfig) validate() error {
	switch strings.ToLower(a.PasswordScheme) {
	case "plaintext", "bcrypt":
	default:
		return fmt.Errorf("password_scheme must be plaintext or bcrypt (got %q)", a.PasswordScheme)
	}
	if a.MinPasswordLength < 1 {
		return fmt.Errorf("min_password_length must be >= 1 (got %d)", a.MinPasswordLength)
	}
	if (a.BootstrapUsername == "") != (a.BootstrapPassword == "") {
		return fmt.Errorf("bootstrap_username and bootstrap_password must be set together")
	}
	return nil
}

func (g *GameConfig) validate() error {
	if g.PublicPageSize <= 0 {
		return fmt.Errorf("public_page_size must be > 0 (got %d)", g.PublicPageSize)
	}
	if g.AdminPageSize <= 0 {
		return fmt.Errorf("admin_page_size must be > 0 (got %d)", g.AdminPageSize)
	}
	if g.MaxPageSize < g.PublicPageSize || g.MaxPageSize < g.AdminPageSize {
		return fmt.Errorf("max_page_size must be >= page sizes (got %d)", g.MaxPageSize)
	}
	return nil
}
