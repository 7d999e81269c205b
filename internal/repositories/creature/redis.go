package creature

import (
	"context"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/anyventure/companion-api/internal/entities"
	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/pkg/clock"
	redisclient "github.com/anyventure/companion-api/internal/redis"
	"github.com/anyventure/companion-api/internal/repositories/redisstore"
)

const (
	creatureKeyPrefix = "creature:"
	creatureIndexKey  = "creature:all"
	tierIndexPrefix   = "creature:tier:"

	// Error messages
	errCreatureNil     = "creature cannot be nil"
	errCreatureIDEmpty = "creature ID cannot be empty"
)

// RedisConfig contains configuration for the Redis creature repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	store *redisstore.Store[*entities.Creature]
	clock clock.Clock
}

// NewRedis creates a new Redis-backed creature repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := redisstore.New[*entities.Creature](&redisstore.Config{
		Client:    cfg.Client,
		KeyPrefix: creatureKeyPrefix,
		IndexKey:  creatureIndexKey,
	})
	if err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{store: store, clock: c}, nil
}

func tierKey(t entities.Tier) string {
	return tierIndexPrefix + string(t)
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Creature == nil {
		return nil, errors.InvalidArgument(errCreatureNil)
	}
	if input.Creature.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	var previousTier entities.Tier
	existing, err := r.store.Get(ctx, input.Creature.ID)
	switch {
	case err == nil:
		previousTier = existing.Tier
		input.Creature.CreatedAt = existing.CreatedAt
	case !errors.IsNotFound(err):
		return nil, err
	}

	now := r.clock.Now().Unix()
	if input.Creature.CreatedAt == 0 {
		input.Creature.CreatedAt = now
	}
	input.Creature.UpdatedAt = now

	err = r.store.Put(ctx, input.Creature, func(pipe goredis.Pipeliner) {
		if previousTier != "" && previousTier != input.Creature.Tier {
			pipe.SRem(ctx, tierKey(previousTier), input.Creature.ID)
		}
		if input.Creature.Tier != "" {
			pipe.SAdd(ctx, tierKey(input.Creature.Tier), input.Creature.ID)
		}
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "saved creature",
		"creature_id", input.Creature.ID,
		"tier", input.Creature.Tier,
		"actions", len(input.Creature.Actions))

	return &SaveOutput{Creature: input.Creature}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	creature, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Creature: creature}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var (
		creatures []*entities.Creature
		err       error
	)
	if input.Tier != "" {
		creatures, err = r.store.ListByIndex(ctx, tierKey(input.Tier))
	} else {
		creatures, err = r.store.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &ListOutput{Creatures: creatures}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	existing, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	err = r.store.Delete(ctx, input.ID, func(pipe goredis.Pipeliner) {
		pipe.SRem(ctx, tierKey(existing.Tier), input.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}
