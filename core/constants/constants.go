package constants

import "time"

// Database pool settings.
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Timeouts applied to outbound calls and request handling.
const (
	DefaultTimeout        = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Redis key prefixes.
const (
	RedisKeyGroupByRoute = "group:route:"
	RedisKeyRateLimit    = "ratelimit"
)

// GroupCacheTTL bounds how long a group config may be served from cache.
// Group configs are immutable for the duration of one request, not forever.
const GroupCacheTTL = 60 * time.Second

// Canonical layouts. Working-window clock values are stored and compared in
// CanonicalClockLayout form, so lexical order equals chronological order.
const (
	CanonicalClockLayout = "15:04:05"
	DateLayout           = "2006-01-02"
)

// Full-day clock bounds used when a group has no mandatory members.
const (
	DayClockStart = "00:00:00"
	DayClockEnd   = "24:00:00"
)
