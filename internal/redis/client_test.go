package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyventure/companion-api/internal/redis"
)

func TestNewRequiresAddress(t *testing.T) {
	_, err := redis.New(redis.Options{})
	assert.Error(t, err)
}

func TestNewPicksClusterForManyAddrs(t *testing.T) {
	client, err := redis.New(redis.Options{Addrs: []string{"a:6379", "b:6379"}})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, ok := client.(*goredis.ClusterClient)
	assert.True(t, ok)
}

func TestParseAddrs(t *testing.T) {
	assert.Equal(t, []string{"a:1", "b:2"}, redis.ParseAddrs(" a:1, ,b:2 "))
	assert.Empty(t, redis.ParseAddrs(""))
}

func TestPing(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := redis.New(redis.Options{Addrs: []string{mr.Addr()}, PoolSize: 2, MaxRetries: -1})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, redis.Ping(context.Background(), client, time.Second))

	mr.Close()
	assert.Error(t, redis.Ping(context.Background(), client, 200*time.Millisecond))
}
