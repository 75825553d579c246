package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ADDR", "DB_DSN", "BOOK_STORE", "PUBLIC_BASE_URL", "DB_TIMEOUT",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_BODY_BYTES", "CORS_ALLOWED_ORIGINS", "ENABLE_HSTS",
}

// isolate runs the test in an empty directory with none of the config keys set.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, 3*time.Second, cfg.DBTimeout)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.EnableHSTS)
}

func TestLoad_FromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("BOOK_STORE", "memory")
	t.Setenv("PUBLIC_BASE_URL", "https://books.example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("DB_TIMEOUT", "750ms")
	t.Setenv("ENABLE_HSTS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "https://books.example.com", cfg.BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 750*time.Millisecond, cfg.DBTimeout)
	assert.True(t, cfg.EnableHSTS)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown store", "BOOK_STORE", "mysql"},
		{"bad timeout", "DB_TIMEOUT", "soon"},
		{"bad base url", "PUBLIC_BASE_URL", "not a url"},
		{"zero burst", "RATE_LIMIT_BURST", "0"},
		{"non numeric rps", "RATE_LIMIT_RPS", "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	isolate(t)
	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_DSN=from_file\nAPP_ADDR=:9090\n"), 0o644))

	t.Setenv("DB_DSN", "from_env")
	require.NoError(t, os.Unsetenv("APP_ADDR"))

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
	assert.Equal(t, ":9090", os.Getenv("APP_ADDR"))
}

func TestRedactedDSN(t *testing.T) {
	cfg := Config{DatabaseDSN: "postgres://user:secret@db:5432/books"}
	assert.Equal(t, "postgres://***@db:5432/books", cfg.RedactedDSN())

	cfg.DatabaseDSN = "host=db user=books"
	assert.Equal(t, "host=db user=books", cfg.RedactedDSN())
}
