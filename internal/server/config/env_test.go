package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv(envAccessTokenTTL, "90s")
	t.Setenv(envTitleCacheTTL, "1h")
	t.Setenv(envRedisAddr, "redis:6379")
	t.Setenv(envRedisPassword, "pw")
	t.Setenv(envLogBackend, "zap")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envCORSAllowedOrigins, "https://a.example, https://b.example,")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 90*time.Second, cfg.AccessTokenValidityDuration)
	assert.Equal(t, time.Hour, cfg.TitleCacheTTL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "pw", cfg.RedisPassword)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP, "unset variables keep defaults")
}

func TestParseEnv_DotenvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"VIDEOCLUB_DATABASE_DRIVER=sqlite\n"+
			"VIDEOCLUB_DATABASE_DSN=file:from-dotenv.db\n"+
			"# comment\n"+
			"VIDEOCLUB_SECRET_KEY=dotenv-secret\n"), 0o600))

	// real environment wins over the file
	t.Setenv(envSecretKey, "process-secret")

	os.Args = []string{"testbin", "-env", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "file:from-dotenv.db", cfg.DatabaseDSN)
	assert.Equal(t, "process-secret", cfg.SecretKey)
}

func TestParseEnv_Failures(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("missing dotenv file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "nope.env")}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("malformed duration panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(envAccessTokenTTL, "sixty")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
