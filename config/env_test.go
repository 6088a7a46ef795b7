package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFilesPrecedence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"app_port": 7000, "db_driver": "sqlite", "redis_addr": "cache:6379"}`), 0o600))
	require.NoError(t, os.WriteFile(envPath, []byte("APP_PORT=7100\nJWT_SECRET=from-dotenv\n"), 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SESSION_TTL", "90m")

	require.NoError(t, loadFromFiles(jsonPath, envPath))

	assert.Equal(t, "7100", get("APP_PORT", ""), ".env beats app.json")
	assert.Equal(t, "from-env", get("JWT_SECRET", ""), "the environment beats .env")
	assert.Equal(t, "sqlite", get("DB_DRIVER", ""))
	assert.Equal(t, "cache:6379", get("REDIS_ADDR", ""))
	assert.Equal(t, "90m", get("SESSION_TTL", ""))
}

func TestLoadFromFilesMissingIsFine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadFromFiles(filepath.Join(dir, "none.json"), filepath.Join(dir, ".env")))
	assert.Equal(t, defaultAppPort, get("APP_PORT", ""))
}

func TestLoadFromFilesBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	assert.Error(t, loadFromFiles(path, filepath.Join(t.TempDir(), ".env")))
}

func TestDerivedValues(t *testing.T) {
	Set("DB_DRIVER", "oracle")
	Set("DATABASE_DSN", "")
	assert.Equal(t, "mysql", DatabaseDriver(), "unknown drivers fall back to mysql")
	assert.Equal(t, defaultMySQLDSN, DatabaseDSN())

	Set("DB_DRIVER", "sqlite")
	assert.Equal(t, defaultSQLiteDSN, DatabaseDSN())
	Set("DATABASE_DSN", "file::memory:")
	assert.Equal(t, "file::memory:", DatabaseDSN())

	Set("SESSION_TTL", "soon")
	assert.Equal(t, defaultSessionTTL, SessionTTL())
	Set("SESSION_TTL", "15m")
	assert.Equal(t, 15*time.Minute, SessionTTL())

	Set("LOGIN_RATE_LIMIT", "-1")
	assert.Equal(t, defaultLoginRateLimit, LoginRateLimit())
	Set("LOGIN_RATE_LIMIT", "5")
	assert.Equal(t, 5, LoginRateLimit())

	assert.Empty(t, TrustedProxies())
	Set("TRUSTED_PROXIES", " 10.0.0.1, ,10.0.0.2 ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, TrustedProxies())
	Set("TRUSTED_PROXIES", "")

	assert.Equal(t, "fallback", Get("NOT_A_KEY", "fallback"))
	Set("feature_x", "on")
	assert.Equal(t, "on", Get("FEATURE_X", ""))
}
