// Package redis wraps the go-redis client so repositories depend on an interface
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Nil is returned by reads of missing keys
const Nil = redis.Nil

// Client is satisfied by both single-node and cluster clients
type Client interface {
	redis.UniversalClient
}

// Options configures the connection. More than one address selects cluster mode.
type Options struct {
	Addrs           []string
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	// ReadOnly routes reads to replicas; cluster mode only
	ReadOnly bool
}

// ParseAddrs splits a comma separated address list, dropping blanks
func ParseAddrs(s string) []string {
	var addrs []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// New connects lazily; call Ping to confirm the server is up
func New(opts Options) (Client, error) {
	if len(opts.Addrs) == 0 {
		return nil, errors.New("redis: at least one address is required")
	}

	var tlsConfig *tls.Config
	if opts.UseTLS {
		tlsConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 self-signed certs in dev
	}

	if len(opts.Addrs) == 1 {
		return redis.NewClient(&redis.Options{
			Addr:            opts.Addrs[0],
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			ConnMaxIdleTime: opts.ConnMaxIdleTime,
			MaxRetries:      opts.MaxRetries,
			TLSConfig:       tlsConfig,
		}), nil
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:           opts.Addrs,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		ReadOnly:        opts.ReadOnly,
		TLSConfig:       tlsConfig,
	}), nil
}

// Ping verifies the server is reachable within timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
