// Package testutils provides shared test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/anyventure/companion-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client that is closed when t finishes.
// The miniredis handle is returned for TTL fast-forwarding and key inspection.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.New(redis.Options{Addrs: []string{mr.Addr()}})
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
