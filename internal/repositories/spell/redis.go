package spell

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
	spellKeyPrefix    = "spell:"
	spellIndexKey     = "spell:all"
	schoolIndexPrefix = "spell:school:"

	// Error messages
	errSpellNil     = "spell cannot be nil"
	errSpellIDEmpty = "spell ID cannot be empty"
)

// RedisConfig contains configuration for the Redis spell repository
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
	store *redisstore.Store[*entities.Spell]
	clock clock.Clock
}

// NewRedis creates a new Redis-backed spell repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := redisstore.New[*entities.Spell](&redisstore.Config{
		Client:    cfg.Client,
		KeyPrefix: spellKeyPrefix,
		IndexKey:  spellIndexKey,
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
	if input.Spell == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if input.Spell.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	var previousSchool string
	existing, err := r.store.Get(ctx, input.Spell.ID)
	switch {
	case err == nil:
		previousSchool = existing.School
		input.Spell.CreatedAt = existing.CreatedAt
	case !errors.IsNotFound(err):
		return nil, err
	}

	now := r.clock.Now().Unix()
	if input.Spell.CreatedAt == 0 {
		input.Spell.CreatedAt = now
	}
	input.Spell.UpdatedAt = now

	err = r.store.Put(ctx, input.Spell, func(pipe goredis.Pipeliner) {
		if previousSchool != "" && previousSchool != input.Spell.School {
			pipe.SRem(ctx, schoolIndexPrefix+previousSchool, input.Spell.ID)
		}
		if input.Spell.School != "" {
			pipe.SAdd(ctx, schoolIndexPrefix+input.Spell.School, input.Spell.ID)
		}
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "saved spell",
		"spell_id", input.Spell.ID,
		"school", input.Spell.School)

	return &SaveOutput{Spell: input.Spell}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	spell, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Spell: spell}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var (
		spells []*entities.Spell
		err    error
	)
	if input.School != "" {
		spells, err = r.store.ListByIndex(ctx, schoolIndexPrefix+input.School)
	} else {
		spells, err = r.store.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &ListOutput{Spells: spells}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	existing, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	err = r.store.Delete(ctx, input.ID, func(pipe goredis.Pipeliner) {
		pipe.SRem(ctx, schoolIndexPrefix+existing.School, input.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}
