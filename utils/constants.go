package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// AuthCacheKey is the auth cache key holding the active token hash of a user.
func AuthCacheKey(userID string) string {
	return AuthCachePrefix + userID
}
