package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"sudokuGo/config"

	"github.com/patrickmn/go-cache"
)

// Global cache
var appCache *cache.Cache

// Initialize cache
func InitializeCache() {
	appCache = cache.New(config.CacheExpiration, config.CacheCleanupInterval)
}

// ListKey builds the cache key for one user's visible game listing.
func ListKey(userID string) string {
	rawKey := fmt.Sprintf("games:user:%s", userID)
	hash := md5.Sum([]byte(rawKey))
	return hex.EncodeToString(hash[:])
}

// Fetch from cache or execute query
func FetchOrExecute(cacheKey string, queryFunc func() ([]byte, error)) ([]byte, bool, error) {
	if cachedData, found := appCache.Get(cacheKey); found {
		return cachedData.([]byte), true, nil
	}

	result, err := queryFunc()
	if err != nil {
		return nil, false, err
	}

	appCache.Set(cacheKey, result, config.CacheExpiration)
	return result, false, nil
}

// Invalidate drops a key after any write that would make it stale.
func Invalidate(cacheKey string) {
	appCache.Delete(cacheKey)
}
