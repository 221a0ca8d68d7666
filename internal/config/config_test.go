package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_NAME", "PORT", "SECRET_KEY", "DEBUG", "LOG_LEVEL",
	"ALLOWED_HOSTS", "CORS_ALLOWED_ORIGINS", "RENDER_EXTERNAL_HOSTNAME",
	"DATABASE_URL", "DB_SSL_REQUIRE", "DB_TYPE", "DB_HOST", "DB_PORT",
	"DB_DATABASE", "DB_USER", "DB_PASSWORD", "DB_CONNECTION_LIMIT",
	"STATIC_DIR", "INDEX_FILE",
}

// clearEnv blanks every setting Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "imoveis", cfg.AppName)
	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, cfg.AllowedHosts)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "db.sqlite3", cfg.DBDatabase)
	assert.True(t, cfg.DBSSLRequire)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, "staticfiles", cfg.StaticDir)
}

func TestLoadRequiresSecretKeyOutsideDebug(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")

	t.Setenv("DEBUG", "True")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestLoadHosts(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ALLOWED_HOSTS", "api.example.com, .example.org,,")
	t.Setenv("RENDER_EXTERNAL_HOSTNAME", "imoveis.onrender.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"api.example.com", ".example.org", "imoveis.onrender.com"}, cfg.AllowedHosts)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadDatabaseSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/imoveis")
	t.Setenv("DB_SSL_REQUIRE", "false")
	t.Setenv("DB_CONNECTION_LIMIT", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/imoveis", cfg.DatabaseURL)
	assert.False(t, cfg.DBSSLRequire)
	assert.Equal(t, 12, cfg.DBConnectionLimit)

	t.Setenv("DB_CONNECTION_LIMIT", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestGetEnvAsBool(t *testing.T) {
	for value, want := range map[string]bool{"1": true, "yes": true, "TRUE": true, "0": false, "off": false} {
		t.Setenv("IMOVEIS_TEST_FLAG", value)
		assert.Equal(t, want, getEnvAsBool("IMOVEIS_TEST_FLAG", !want), value)
	}
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("IMOVEIS_TEST_INT", "many")
	assert.Equal(t, 3, getEnvAsInt("IMOVEIS_TEST_INT", 3))
}
