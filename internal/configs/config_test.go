package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "APP_ENV", "JWT_SECRET", "DATABASE_URL", "PORT", "RUN_MIGRATIONS",
		"IDENTITY_PROVIDER_TIMEOUT", "DEFAULT_LANGUAGE")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Second, cfg.IdentityProviderTimeout)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Contains(t, cfg.PostgresURL, "localhost")
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, "APP_ENV", "JWT_SECRET", "DATABASE_URL", "PORT",
		"IDENTITY_PROVIDER_URL", "IDENTITY_PROVIDER_TIMEOUT")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"APP_ENV=prod\nJWT_SECRET=s3cret\nPORT=9090\nIDENTITY_PROVIDER_URL=http://idp:8081\nIDENTITY_PROVIDER_TIMEOUT=2s\n",
	), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://idp:8081", cfg.IdentityProviderURL)
	assert.Equal(t, 2*time.Second, cfg.IdentityProviderTimeout)
	assert.Contains(t, cfg.PostgresURL, "@postgres:5432")
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, getEnvAsDuration("SOME_TIMEOUT", time.Minute))
}

// godotenv не перезаписывает уже заданные переменные, поэтому их нужно именно
// удалить; t.Setenv вернёт исходные значения после теста
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
