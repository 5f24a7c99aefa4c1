// Package config loads runtime configuration from the environment, an optional
// .env file, and command-line flags.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment keys.
const (
	KeyDatabaseURL       = "DATABASE_URL"
	KeyDBPath            = "SHOP_DB_PATH"
	KeySiteDir           = "SHOP_SITE_DIR"
	KeyPort              = "APP_PORT"
	KeyAdminPassword     = "ADMIN_PASSWORD"
	KeyAdminPasswordHash = "ADMIN_PASSWORD_HASH"
	KeyJWTSecret         = "JWT_SECRET"
	KeyLogLevel          = "LOG_LEVEL"
	KeyEnv               = "APP_ENV"
)

// Config holds everything the commands need to wire the application.
type Config struct {
	DatabaseURL       string
	DBPath            string
	SiteDir           string
	Port              string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	LogLevel          string
	Env               string
}

// OutputFile is the published HTML document.
func (c Config) OutputFile() string { return filepath.Join(c.SiteDir, "index.html") }

// UploadsDir holds uploaded JPEG images.
func (c Config) UploadsDir() string { return filepath.Join(c.SiteDir, "uploads") }

// Development reports whether human-friendly logging was requested.
func (c Config) Development() bool { return strings.EqualFold(c.Env, "development") }

// AuthEnabled reports whether an admin password was configured.
func (c Config) AuthEnabled() bool { return c.AdminPassword != "" || c.AdminPasswordHash != "" }

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDBPath, "shop.db")
	v.SetDefault(KeySiteDir, "site")
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyEnv, "production")
}

// Load reads .env (if present) and the environment into a Config. Flags bound
// to v take precedence over both.
func Load(v *viper.Viper) Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	SetDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		DatabaseURL:       strings.TrimSpace(v.GetString(KeyDatabaseURL)),
		DBPath:            v.GetString(KeyDBPath),
		SiteDir:           v.GetString(KeySiteDir),
		Port:              v.GetString(KeyPort),
		AdminPassword:     v.GetString(KeyAdminPassword),
		AdminPasswordHash: v.GetString(KeyAdminPasswordHash),
		JWTSecret:         v.GetString(KeyJWTSecret),
		LogLevel:          v.GetString(KeyLogLevel),
		Env:               v.GetString(KeyEnv),
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = randomSecret()
	}
	return cfg
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
