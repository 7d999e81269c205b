package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/anyventure/companion-api/internal/config"
	"github.com/anyventure/companion-api/internal/pkg/clock"
	"github.com/anyventure/companion-api/internal/redis"
	characterrepo "github.com/anyventure/companion-api/internal/repositories/character"
	creaturerepo "github.com/anyventure/companion-api/internal/repositories/creature"
	itemrepo "github.com/anyventure/companion-api/internal/repositories/item"
	"github.com/anyventure/companion-api/internal/repositories/rolllog"
	spellrepo "github.com/anyventure/companion-api/internal/repositories/spell"
)

// repositories holds every Redis-backed store the commands share
type repositories struct {
	client    redis.Client
	spells    spellrepo.Repository
	items     itemrepo.Repository
	creatures creaturerepo.Repository
	chars     characterrepo.Repository
	rollLogs  rolllog.Repository
}

func (r *repositories) Close() error {
	return r.client.Close()
}

func setupLogger(cfg *config.Config) {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

func connectRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	client, err := redis.New(redis.Options{
		Addrs:           redis.ParseAddrs(cfg.RedisAddr),
		PoolSize:        10,
		MinIdleConns:    2,
		ConnMaxIdleTime: 5 * time.Minute,
		MaxRetries:      3,
	})
	if err != nil {
		return nil, err
	}

	if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
		_ = client.Close()
		return nil, err
	}

	repos, err := newRepositories(client, cfg.RollLogTTL)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return repos, nil
}

func newRepositories(client redis.Client, rollLogTTL time.Duration) (*repositories, error) {
	var err error
	c := clock.New()
	repos := &repositories{client: client}

	if repos.spells, err = spellrepo.NewRedis(&spellrepo.RedisConfig{Client: client, Clock: c}); err != nil {
		return nil, fmt.Errorf("failed to create spell repository: %w", err)
	}
	if repos.items, err = itemrepo.NewRedis(&itemrepo.RedisConfig{Client: client, Clock: c}); err != nil {
		return nil, fmt.Errorf("failed to create item repository: %w", err)
	}
	if repos.creatures, err = creaturerepo.NewRedis(&creaturerepo.RedisConfig{Client: client, Clock: c}); err != nil {
		return nil, fmt.Errorf("failed to create creature repository: %w", err)
	}
	if repos.chars, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: c}); err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	if repos.rollLogs, err = rolllog.NewRedisRepository(&rolllog.Config{
		Client: client,
		Clock:  c,
		TTL:    rollLogTTL,
	}); err != nil {
		return nil, fmt.Errorf("failed to create roll log repository: %w", err)
	}

	return repos, nil
}
