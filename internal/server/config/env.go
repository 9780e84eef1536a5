package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/videoclub/internal/flagx"
)

// Environment variable names read by parseEnv.
const (
	envHTTPAddr           = "VIDEOCLUB_HTTP_ADDR"
	envDatabaseDriver     = "VIDEOCLUB_DATABASE_DRIVER"
	envDatabaseDSN        = "VIDEOCLUB_DATABASE_DSN"
	envSecretKey          = "VIDEOCLUB_SECRET_KEY"
	envAccessTokenTTL     = "VIDEOCLUB_ACCESS_TOKEN_VALIDITY"
	envRedisAddr          = "VIDEOCLUB_REDIS_ADDR"
	envRedisPassword      = "VIDEOCLUB_REDIS_PASSWORD"
	envTitleCacheTTL      = "VIDEOCLUB_TITLE_CACHE_TTL"
	envLogBackend         = "VIDEOCLUB_LOG_BACKEND"
	envLogLevel           = "VIDEOCLUB_LOG_LEVEL"
	envCORSAllowedOrigins = "VIDEOCLUB_CORS_ALLOWED_ORIGINS"
)

// parseEnv overlays Config with VIDEOCLUB_* variables.
//
// If -env points at a dotenv file, its entries are read with godotenv and
// used as a base; variables already present in the process environment
// win over the file. Durations use Go syntax ("90s", "1h"). Origins are
// comma separated. Unreadable files and malformed durations panic, the same
// way the JSON layer does.
func parseEnv(config *Config) {
	fileValues := map[string]string{}

	if path := flagx.EnvFileFlag(os.Args[1:]); path != "" {
		values, err := godotenv.Read(path)
		if err != nil {
			panic(err)
		}
		fileValues = values
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	setString(lookup, envHTTPAddr, &config.EndpointAddrHTTP)
	setString(lookup, envDatabaseDriver, &config.DatabaseDriver)
	setString(lookup, envDatabaseDSN, &config.DatabaseDSN)
	setString(lookup, envSecretKey, &config.SecretKey)
	setDuration(lookup, envAccessTokenTTL, &config.AccessTokenValidityDuration)
	setString(lookup, envRedisAddr, &config.RedisAddr)
	setString(lookup, envRedisPassword, &config.RedisPassword)
	setDuration(lookup, envTitleCacheTTL, &config.TitleCacheTTL)
	setString(lookup, envLogBackend, &config.LogBackend)
	setString(lookup, envLogLevel, &config.LogLevel)

	if v, ok := lookup(envCORSAllowedOrigins); ok && v != "" {
		config.CORSAllowedOrigins = splitList(v)
	}
}

func setString(lookup func(string) (string, bool), key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(lookup func(string) (string, bool), key string, dst *time.Duration) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
