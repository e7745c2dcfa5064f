package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Org      OrgConfig
	Admin    AdminConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port         string
	CookieSecure bool
}

type DatabaseConfig struct {
	// Path is the sqlite file used when DSN is empty.
	Path string
	// DSN, when set, selects Postgres.
	DSN string
}

type AuthConfig struct {
	Secret string
}

type OrgConfig struct {
	// Domain is the email suffix that marks internal accounts.
	Domain string
}

type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type I18nConfig struct {
	DefaultLanguage string
	LocalesDir      string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			CookieSecure: getEnvAsBool("COOKIE_SECURE", false),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", filepath.Join("data", "vetor.db")),
			DSN:  getEnv("DATABASE_DSN", ""),
		},
		Auth: AuthConfig{
			Secret: getEnv("SECRET_KEY", "change_me_in_production"),
		},
		Org: OrgConfig{
			Domain: getEnv("ORG_DOMAIN", "infoej.com.br"),
		},
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", ""),
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		I18n: I18nConfig{
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "pt"),
			LocalesDir:      getEnv("LOCALES_DIR", filepath.Join("internal", "i18n", "locales")),
		},
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
