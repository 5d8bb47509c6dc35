package config

import (
	"os"
	"strings"
)

func envFlag(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y" || v == "on"
}

// SkipMigrations leaves schema changes to cmd/init-db.
//
// Set via env:
// - SKIP_MIGRATIONS=true
func SkipMigrations() bool {
	return envFlag("SKIP_MIGRATIONS")
}

// RateLimitEnabled turns on the per-IP limiter. It needs Redis.
//
// Set via env:
// - RATE_LIMIT_ENABLED=true
func RateLimitEnabled() bool {
	return envFlag("RATE_LIMIT_ENABLED")
}

// ReportCacheEnabled caches report results in Redis.
//
// Set via env:
// - ENABLE_REPORT_CACHE=true
func ReportCacheEnabled() bool {
	return envFlag("ENABLE_REPORT_CACHE")
}

// IsProduction requires an explicit CORS allowlist.
//
// Set via env:
// - GO_ENV=production
func IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production")
}
