package config

import (
	"net"
	"net/url"
	"os"
)

const defaultSecret = "your-secret-key-change-in-production"

// Config application settings
type Config struct {
	Env         string
	AppSecret   string
	DatabaseURL string
	Port        string
	SiteName    string
	SiteUrl     string
	LogLevel    string
}

// Load reads settings from the environment
func Load() *Config {
	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		dbUser := getEnv("DB_USER", "postgres")
		dbPass := getEnv("DB_PASSWORD", "postgres")
		dbHost := getEnv("DB_HOST", "localhost")
		dbPort := getEnv("DB_PORT", "5432")
		dbName := getEnv("DB_NAME", "recipevault")
		dbSSL := getEnv("DB_SSLMODE", "disable")

		// url.URL escapes reserved characters in the credentials
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(dbUser, dbPass),
			Host:     net.JoinHostPort(dbHost, dbPort),
			Path:     "/" + dbName,
			RawQuery: url.Values{"sslmode": {dbSSL}}.Encode(),
		}
		dbURL = dsn.String()
	}

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		AppSecret:   getEnv("APP_SECRET", defaultSecret),
		DatabaseURL: dbURL,
		Port:        getEnv("PORT", "5005"),
		SiteName:    getEnv("SITE_NAME", "RecipeVault"),
		SiteUrl:     getEnv("SITE_URL", "http://localhost:5005"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesDefaultSecret reports whether APP_SECRET was left at its placeholder
func (c *Config) UsesDefaultSecret() bool {
	return c.AppSecret == defaultSecret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
