package utils

import "time"

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// RoleCacheTTL is the time-to-live for role cache entries.
const RoleCacheTTL = 10 * time.Minute

// CatalogCacheKey holds the cached service catalogue.
const CatalogCacheKey = "catalog:services"

// CatalogNamesCacheKey holds the cached {_id, name} projection of the catalogue.
const CatalogNamesCacheKey = "catalog:names"

// CatalogCacheTTL is the time-to-live for catalogue cache entries.
const CatalogCacheTTL = 5 * time.Minute

// RoleCacheKey returns the role cache key for email.
func RoleCacheKey(email string) string {
	return RoleCachePrefix + email
}
