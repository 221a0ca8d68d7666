package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is built once by Load and
// passed explicitly; nothing reads the environment after startup.
type Config struct {
	// Server configuration
	AppName   string
	Port      string
	SecretKey string
	Debug     bool
	LogLevel  string

	// Request filtering
	AllowedHosts       []string
	CORSAllowedOrigins []string

	// Database configuration
	DatabaseURL       string // takes precedence over the DB_* settings
	DBSSLRequire      bool
	DBType            string // sqlite, sqlite3, mysql, postgres, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Front end
	StaticDir string
	IndexFile string
}

// Load loads configuration from a .env file, when present, and the environment
func Load() (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	cfg := &Config{
		AppName:            getEnv("APP_NAME", "imoveis"),
		Port:               getEnv("PORT", "8000"),
		SecretKey:          getEnv("SECRET_KEY", ""),
		Debug:              getEnvAsBool("DEBUG", false),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AllowedHosts:       getEnvAsList("ALLOWED_HOSTS", []string{"localhost", "127.0.0.1"}),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBSSLRequire:       getEnvAsBool("DB_SSL_REQUIRE", true),
		DBType:             getEnv("DB_TYPE", "sqlite"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", ""),
		DBDatabase:         getEnv("DB_DATABASE", "db.sqlite3"),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		StaticDir:          getEnv("STATIC_DIR", "staticfiles"),
		IndexFile:          getEnv("INDEX_FILE", ""),
	}

	if host := getEnv("RENDER_EXTERNAL_HOSTNAME", ""); host != "" {
		cfg.AllowedHosts = append(cfg.AllowedHosts, host)
	}

	// Validate required fields
	if cfg.SecretKey == "" && !cfg.Debug {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.DBConnectionLimit < 1 {
		return nil, fmt.Errorf("DB_CONNECTION_LIMIT must be at least 1")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool treats "true", "1" and "yes" in any case as true
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(valueStr)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return append([]string(nil), defaultValue...)
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
