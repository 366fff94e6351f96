package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DB_PATH", "DB_MAX_OPEN_CONNS", "DB_BUSY_TIMEOUT_MS", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(key, "")
	}

	Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "./data/notes.db", AppConfig.DBPath)
	assert.Equal(t, 10, AppConfig.DBMaxOpenConns)
	assert.Equal(t, 5*time.Second, AppConfig.DBBusyTimeout)
	assert.Equal(t, 200, AppConfig.RateLimitPerMinute)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set.
	for _, key := range []string{"PORT", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=8080\nDB_MAX_OPEN_CONNS=3\n"), 0644))

	Load(envFile)

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, 3, AppConfig.DBMaxOpenConns)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")

	assert.Equal(t, 5, GetEnvInt("DB_MAX_IDLE_CONNS", 5))
}
