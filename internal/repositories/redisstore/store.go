// Package redisstore keeps JSON records in Redis under a key prefix with a
// set index of every stored ID. Records are core.Entity values: the store keys
// them by GetID and names them by GetType in errors and logs. Catalog and
// character repositories build on it.
package redisstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"
	goredis "github.com/redis/go-redis/v9"

	"github.com/anyventure/companion-api/internal/errors"
	redisclient "github.com/anyventure/companion-api/internal/redis"
)

// Config contains configuration for a Store
type Config struct {
	Client redisclient.Client
	// KeyPrefix is prepended to IDs, e.g. "spell:"
	KeyPrefix string
	// IndexKey is the set holding every stored ID
	IndexKey string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.Field("client", "cannot be nil")
	}
	errors.ValidateRequired("key_prefix", cfg.KeyPrefix, vb)
	errors.ValidateRequired("index_key", cfg.IndexKey, vb)
	return vb.Build()
}

// Store persists entities of pointer type T as JSON blobs
type Store[T core.Entity] struct {
	client    redisclient.Client
	kind      string
	keyPrefix string
	indexKey  string
}

// New creates a Store. The kind is read from the zero value of T, so GetType
// must not dereference its receiver.
func New[T core.Entity](cfg *Config) (*Store[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var zero T
	return &Store[T]{
		client:    cfg.Client,
		kind:      zero.GetType(),
		keyPrefix: cfg.KeyPrefix,
		indexKey:  cfg.IndexKey,
	}, nil
}

// Key returns the Redis key for id
func (s *Store[T]) Key(id string) string {
	return s.keyPrefix + id
}

// Client returns the underlying client for repository-specific indexes
func (s *Store[T]) Client() redisclient.Client {
	return s.client
}

// Exists reports whether id is stored
func (s *Store[T]) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.Key(id)).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to check %s existence", s.kind)
	}
	return n > 0, nil
}

// Put writes value under its GetID and indexes it in one transaction.
// extra, when set, queues additional commands on the same transaction.
func (s *Store[T]) Put(ctx context.Context, value T, extra func(pipe goredis.Pipeliner)) error {
	id := value.GetID()
	if id == "" {
		return errors.InvalidArgumentf("%s ID cannot be empty", s.kind)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", s.kind)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.Key(id), data, 0)
	pipe.SAdd(ctx, s.indexKey, id)
	if extra != nil {
		extra(pipe)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store %s", s.kind)
	}
	return nil
}

// Get reads id, returning NotFound when absent
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	result, err := s.client.Get(ctx, s.Key(id)).Result()
	if err != nil {
		if err == goredis.Nil {
			return zero, errors.NotFoundf("%s with ID %s not found", s.kind, id)
		}
		return zero, errors.Wrapf(err, "failed to get %s", s.kind)
	}

	value, err := s.decode(result)
	if err != nil {
		return zero, errors.Wrapf(err, "failed to unmarshal %s", s.kind)
	}
	return value, nil
}

// Delete removes id and its index entry.
// extra, when set, queues additional commands on the same transaction.
func (s *Store[T]) Delete(ctx context.Context, id string, extra func(pipe goredis.Pipeliner)) error {
	exists, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFoundf("%s with ID %s not found", s.kind, id)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.Key(id))
	pipe.SRem(ctx, s.indexKey, id)
	if extra != nil {
		extra(pipe)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s", s.kind)
	}
	return nil
}

// List returns every indexed value ordered by ID
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	return s.ListByIndex(ctx, s.indexKey)
}

// ListByIndex returns the values whose IDs are members of indexKey, ordered by ID.
// IDs whose record has vanished are removed from the index.
func (s *Store[T]) ListByIndex(ctx context.Context, indexKey string) ([]T, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read index",
			"kind", s.kind,
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get %s index %s", s.kind, indexKey)
	}
	sort.Strings(ids)

	slog.DebugContext(ctx, "found IDs in index",
		"kind", s.kind,
		"index_key", indexKey,
		"count", len(ids))

	if len(ids) == 0 {
		return []T{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*goredis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, s.Key(id))
	}
	// individual misses are inspected per command below
	_, _ = pipe.Exec(ctx)

	values := make([]T, 0, len(ids))
	var stale []any
	for i, cmd := range cmds {
		result, err := cmd.Result()
		if err == goredis.Nil {
			slog.WarnContext(ctx, "record not found, cleaning up index",
				"kind", s.kind,
				"id", ids[i],
				"index_key", indexKey)
			stale = append(stale, ids[i])
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get %s %s", s.kind, ids[i])
		}

		value, err := s.decode(result)
		if err != nil {
			slog.WarnContext(ctx, "skipping corrupt record",
				"kind", s.kind,
				"id", ids[i],
				"error", err.Error())
			continue
		}
		values = append(values, value)
	}

	if len(stale) > 0 {
		if err := s.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to clean up index",
				"kind", s.kind,
				"index_key", indexKey,
				"error", err.Error())
		}
	}

	return values, nil
}

// decode unmarshals into a fresh T; json allocates the pointee of a nil pointer
func (s *Store[T]) decode(data string) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}
