package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		DataDir:      ".rental",
		Store:        "dir",
		LogLevel:     "warn",
		LogPretty:    true,
		Currency:     "USD",
		HistoryLimit: 100,
	}, cfg)
	assert.Equal(t, ".rental", cfg.StorePath())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RENTAL_STORE", "sqlite")
	t.Setenv("RENTAL_DATA_DIR", "/tmp/rent")
	t.Setenv("RENTAL_CURRENCY", "EUR")
	t.Setenv("RENTAL_HISTORY_LIMIT", "20")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, filepath.Join("/tmp/rent", "rental.db"), cfg.StorePath())
}

func TestLoad_DotEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("RENTAL_LOG_LEVEL=debug\nRENTAL_CURRENCY=GBP\n"), 0644))
	t.Setenv("RENTAL_CURRENCY", "EUR")
	// godotenv sets variables that t.Setenv does not restore.
	t.Cleanup(func() { os.Unsetenv("RENTAL_LOG_LEVEL") })

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "EUR", cfg.Currency, "environment wins over .env")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"bad int", "RENTAL_HISTORY_LIMIT", "many", "parse env"},
		{"bad store", "RENTAL_STORE", "redis", "RENTAL_STORE"},
		{"limit too high", "RENTAL_HISTORY_LIMIT", "500", "RENTAL_HISTORY_LIMIT"},
		{"bad currency", "RENTAL_CURRENCY", "dollars", "RENTAL_CURRENCY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
