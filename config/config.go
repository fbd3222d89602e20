package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Config holds all configuration for the application
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	Port          string
	Env           string
	SiteURL       string
}

// GoogleOAuthConfig is set up once at startup by InitGoogleOAuth.
var GoogleOAuthConfig *oauth2.Config

// sessionSecretVars lists the env names tried, in priority order, for the
// session signing secret.
var sessionSecretVars = []string{"SESSION_SECRET", "APP_SECRET", "JWT_SECRET"}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; deployments set real environment variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		SessionSecret: firstEnv(sessionSecretVars...),
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("ENV"),
		SiteURL:       os.Getenv("SITE_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "http://localhost:" + cfg.Port
	}

	// Unsigned session tokens are a dev-only convenience. In production a
	// missing secret would mean issuing tokens nothing will ever verify, so
	// startup refuses instead.
	if cfg.IsProduction() && cfg.SessionSecret == "" {
		return nil, fmt.Errorf("production requires a session signing secret; set one of %s",
			strings.Join(sessionSecretVars, ", "))
	}
	return cfg, nil
}

// IsProduction reports whether the app runs in production mode. Unsigned
// session tokens are only ever accepted when this is false.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// InitGoogleOAuth configures the Google sign-in flow
func InitGoogleOAuth(cfg *Config) {
	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  cfg.SiteURL + "/auth/google/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}
