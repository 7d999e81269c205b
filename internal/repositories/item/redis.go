package item

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
	itemKeyPrefix   = "item:"
	itemIndexKey    = "item:all"
	typeIndexPrefix = "item:type:"

	// Error messages
	errItemNil     = "item cannot be nil"
	errItemIDEmpty = "item ID cannot be empty"
)

// RedisConfig contains configuration for the Redis item repository
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
	store *redisstore.Store[*entities.Item]
	clock clock.Clock
}

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := redisstore.New[*entities.Item](&redisstore.Config{
		Client:    cfg.Client,
		KeyPrefix: itemKeyPrefix,
		IndexKey:  itemIndexKey,
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

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	var previousType string
	existing, err := r.store.Get(ctx, input.Item.ID)
	switch {
	case err == nil:
		previousType = existing.Type
		input.Item.CreatedAt = existing.CreatedAt
	case !errors.IsNotFound(err):
		return nil, err
	}

	now := r.clock.Now().Unix()
	if input.Item.CreatedAt == 0 {
		input.Item.CreatedAt = now
	}
	input.Item.UpdatedAt = now

	err = r.store.Put(ctx, input.Item, func(pipe goredis.Pipeliner) {
		if previousType != "" && previousType != input.Item.Type {
			pipe.SRem(ctx, typeIndexPrefix+previousType, input.Item.ID)
		}
		if input.Item.Type != "" {
			pipe.SAdd(ctx, typeIndexPrefix+input.Item.Type, input.Item.ID)
		}
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "saved item",
		"item_id", input.Item.ID,
		"type", input.Item.Type)

	return &SaveOutput{Item: input.Item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	item, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Item: item}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var (
		items []*entities.Item
		err   error
	)
	if input.Type != "" {
		items, err = r.store.ListByIndex(ctx, typeIndexPrefix+input.Type)
	} else {
		items, err = r.store.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	existing, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	err = r.store.Delete(ctx, input.ID, func(pipe goredis.Pipeliner) {
		pipe.SRem(ctx, typeIndexPrefix+existing.Type, input.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}
