package config

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Session   SessionConfig   `yaml:"session"`
	Admin     AdminConfig     `yaml:"admin"`
	Game      GameConfig      `yaml:"game"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// StaticDir is the directory holding the front-end pages. Empty disables static serving.
	StaticDir    string `yaml:"static_dir"     env:"SERVER_STATIC_DIR"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// SessionConfig holds admin session cookie settings.
type SessionConfig struct {
	Secret     string        `yaml:"secret"      env:"SESSION_SECRET"      env-required:"true"`
	Issuer     string        `yaml:"issuer"      env:"SESSION_ISSUER"      env-default:"gossip-murmur"`
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"murmur.sid"`
	TTL        time.Duration `yaml:"ttl"         env:"SESSION_TTL"         env-default:"24h"`
	Secure     bool          `yaml:"secure"      env:"SESSION_SECURE"      env-default:"false"`
}

// AdminConfig holds admin credential settings.
type AdminConfig struct {
	// PasswordScheme is "plaintext" or "bcrypt".
	PasswordScheme    string `yaml:"password_scheme"     env:"ADMIN_PASSWORD_SCHEME"     env-default:"plaintext"`
	MinPasswordLength int    `yaml:"min_password_length" env:"ADMIN_MIN_PASSWORD_LENGTH" env-default:"6"`
	// BootstrapUsername and BootstrapPassword create an admin on startup if it does not exist yet.
	BootstrapUsername string `yaml:"bootstrap_username" env:"ADMIN_BOOTSTRAP_USERNAME"`
	BootstrapPassword string `yaml:"bootstrap_password" env:"ADMIN_BOOTSTRAP_PASSWORD"`
}

// GameConfig holds append-workflow and listing settings.
type GameConfig struct {
	PublicPageSize int  `yaml:"public_page_size" env:"GAME_PUBLIC_PAGE_SIZE" env-default:"10"`
	AdminPageSize  int  `yaml:"admin_page_size"  env:"GAME_ADMIN_PAGE_SIZE"  env-default:"20"`
	MaxPageSize    int  `yaml:"max_page_size"    env:"GAME_MAX_PAGE_SIZE"    env-default:"100"`
	RequireGrowth  bool `yaml:"require_growth"   env:"GAME_REQUIRE_GROWTH"   env-default:"false"`
}

// RateLimitConfig holds per-IP limits for write endpoints. Zero disables a limit.
type RateLimitConfig struct {
	SubmitPerMinute int           `yaml:"submit_per_minute" env:"RATE_LIMIT_SUBMIT_PER_MINUTE" env-default:"30"`
	LoginPerMinute  int           `yaml:"login_per_minute"  env:"RATE_LIMIT_LOGIN_PER_MINUTE"  env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
	// TrustedProxies is a comma-separated list of IPs or CIDRs whose
	// X-Forwarded-For header is honored when keying limits.
	TrustedProxies string `yaml:"trusted_proxies" env:"RATE_LIMIT_TRUSTED_PROXIES"`
}

// TrustedProxyPrefixes parses TrustedProxies. A bare IP becomes a single-address prefix.
func (c RateLimitConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, raw := range strings.Split(c.TrustedProxies, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
