package rolllog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/anyventure/companion-api/internal/errors"
	"github.com/anyventure/companion-api/internal/pkg/clock"
	redisclient "github.com/anyventure/companion-api/internal/redis"
)

const (
	// Key pattern: roll_log:{character_id}
	rollLogKeyPrefix = "roll_log:"

	// DefaultTTL is used when neither the config nor the append names one
	DefaultTTL = 30 * time.Minute

	// MaxRolls bounds a log; the oldest rolls are dropped first
	MaxRolls = 50

	// maxAppendAttempts bounds optimistic retries when concurrent appends collide
	maxAppendAttempts = 10

	// Error messages
	errCharacterIDEmpty = "character ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is the default lifetime of a new log
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.Field("client", "redis client is required")
	}
	if c.Clock == nil {
		vb.Field("clock", "clock is required")
	}
	if c.TTL < 0 {
		vb.Field("ttl", "cannot be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := r.buildKey(input.CharacterID)
	var log *RollLog
	appendRoll := func(tx *redis.Tx) error {
		now := r.clock.Now()
		current, err := r.read(ctx, tx, key)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}
		if current == nil || !now.Before(current.ExpiresAt) {
			ttl := input.TTL
			if ttl <= 0 {
				ttl = r.ttl
			}
			current = &RollLog{
				CharacterID: input.CharacterID,
				CreatedAt:   now,
				ExpiresAt:   now.Add(ttl),
			}
		}

		current.Rolls = append(current.Rolls, input.Roll)
		if len(current.Rolls) > MaxRolls {
			current.Rolls = current.Rolls[len(current.Rolls)-MaxRolls:]
		}

		data, err := json.Marshal(current)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal roll log")
		}

		// Keep the remaining lifetime of an existing log
		remaining := current.ExpiresAt.Sub(now)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, remaining)
			return nil
		})
		if err != nil {
			return err
		}
		log = current
		return nil
	}

	var err error
	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		err = r.client.Watch(ctx, appendRoll, key)
		if err != redis.TxFailedErr {
			break
		}
		slog.DebugContext(ctx, "roll log changed during append, retrying",
			"character_id", input.CharacterID,
			"attempt", attempt+1)
	}
	if err == redis.TxFailedErr {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "roll log is busy, try again")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store roll log in Redis")
	}

	slog.DebugContext(ctx, "appended skill roll",
		"character_id", input.CharacterID,
		"roll_id", input.Roll.RollID,
		"rolls", len(log.Rolls))

	return &AppendOutput{Log: log}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	log, err := r.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Log: log}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var rollsDeleted int32
	if log, err := r.load(ctx, input.CharacterID); err == nil {
		// nolint:gosec // bounded by MaxRolls
		rollsDeleted = int32(len(log.Rolls))
	}

	if err := r.client.Del(ctx, r.buildKey(input.CharacterID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roll log from Redis")
	}

	return &ClearOutput{RollsDeleted: rollsDeleted}, nil
}

// load reads a log, treating an expired one as missing
func (r *redisRepository) load(ctx context.Context, characterID string) (*RollLog, error) {
	key := r.buildKey(characterID)

	log, err := r.read(ctx, r.client, key)
	if err != nil {
		return nil, err
	}

	if !r.clock.Now().Before(log.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("roll log has expired")
	}

	return log, nil
}

// getter is satisfied by both the client and a watched transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// read decodes the log stored at key without any expiry check
func (r *redisRepository) read(ctx context.Context, c getter, key string) (*RollLog, error) {
	data, err := c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("roll log not found")
		}
		return nil, errors.Wrapf(err, "failed to get roll log from Redis")
	}

	var log RollLog
	if err := json.Unmarshal([]byte(data), &log); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roll log")
	}
	return &log, nil
}

func (r *redisRepository) buildKey(characterID string) string {
	return rollLogKeyPrefix + characterID
}
