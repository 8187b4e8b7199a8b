package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultRedisPrefix namespaces every key the store writes
	defaultRedisPrefix = "moodmeet:"

	// maxTxRetries bounds optimistic retries of a single-document write
	maxTxRetries = 16
)

// RedisBackendConfig holds configuration for the Redis backend
type RedisBackendConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Prefix is prepended to every key, defaults to "moodmeet:"
	Prefix string
}

type redisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend creates a backend that stores each document as a JSON
// string with a per-collection sorted set of IDs scored by creation time
func NewRedisBackend(cfg *RedisBackendConfig) (*redisBackend, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	return &redisBackend{
		client: cfg.RedisClient,
		prefix: prefix,
	}, nil
}

func (b *redisBackend) open(name string) (rawStore, error) {
	return &redisStore{
		client:    b.client,
		docPrefix: fmt.Sprintf("%s%s:doc:", b.prefix, name),
		idsKey:    fmt.Sprintf("%s%s:ids", b.prefix, name),
	}, nil
}

type redisStore struct {
	client    *redis.Client
	docPrefix string
	idsKey    string
}

func (r *redisStore) docKey(id string) string {
	return r.docPrefix + id
}

func (r *redisStore) insert(ctx context.Context, id string, createdAt time.Time, data []byte) error {
	pipe := r.client.TxPipeline()
	set := pipe.SetNX(ctx, r.docKey(id), data, 0)
	pipe.ZAddNX(ctx, r.idsKey, redis.Z{
		Score:  float64(createdAt.UnixNano()),
		Member: id,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if !set.Val() {
		return ErrDuplicateID
	}

	return nil
}

func (r *redisStore) get(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.docKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (r *redisStore) scan(ctx context.Context) ([][]byte, error) {
	ids, err := r.client.ZRange(ctx, r.idsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, r.docKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	blobs := make([][]byte, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Bytes()
		if err != nil {
			// index entry left behind by an interrupted delete
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		blobs = append(blobs, data)
	}

	return blobs, nil
}

func (r *redisStore) update(ctx context.Context, id string, fn mutateFunc) (bool, error) {
	key := r.docKey(id)

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		written := false
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return nil
				}
				return err
			}

			next, ok, err := fn(data)
			if err != nil || !ok {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, next, 0)
				return nil
			})
			if err == nil {
				written = true
			}
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return written, err
	}

	return false, ErrWriteContention
}

func (r *redisStore) remove(ctx context.Context, id string, fn checkFunc) (bool, error) {
	key := r.docKey(id)

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		removed := false
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					return nil
				}
				return err
			}

			ok, err := fn(data)
			if err != nil || !ok {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, key)
				pipe.ZRem(ctx, r.idsKey, id)
				return nil
			})
			if err == nil {
				removed = true
			}
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return removed, err
	}

	return false, ErrWriteContention
}
