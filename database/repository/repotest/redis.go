package repotest

import (
	"os"
	"strconv"
	"testing"

	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
)

// RedisClient connects to the Redis server named by REDIS_ADDR and skips the
// test when none is configured or reachable. Callers remove the keys they write.
func RedisClient(t testing.TB) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis-backed test")
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_CACHE_DB"))

	client, err := utils.NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), db)
	if err != nil {
		t.Skipf("Redis unavailable at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
