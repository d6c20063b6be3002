package testutil

// Package testutil provides shared helpers for tests that need external
// infrastructure. Redis-backed tests skip cleanly when no server is
// reachable unless TEST_REQUIRE_REDIS forces them on.

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Cleanup(func())
}

// SetupTestRedis returns a Redis client pointed at the test server, or
// skips the test when none is reachable. The client closes via t.Cleanup.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr, ok := GetTestRedisAddr(t)
	if !ok {
		if requireRedis() {
			t.Fatalf("Redis required (TEST_REQUIRE_REDIS) but not reachable at %s", addr)
		}
		t.Skipf("Redis not available at %s; skipping", addr)
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: testRedisDB()})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	})
	return client
}

// GetTestRedisAddr returns the Redis address for testing and whether a
// server answered a ping there.
func GetTestRedisAddr(t TestingTB) (string, bool) {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return addr, false
	}
	return addr, true
}

func testRedisDB() int {
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return 1
}

func requireRedis() bool {
	v := os.Getenv("TEST_REQUIRE_REDIS")
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
