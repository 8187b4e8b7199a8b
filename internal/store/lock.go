package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockTimeout is returned when a lock is still held after the wait
var ErrLockTimeout = apperrors.Conflict("resource is busy, try again")

// lockRetryInterval is how often a contended Redis lock is retried
const lockRetryInterval = 20 * time.Millisecond

// Release frees a lock obtained from a Locker
type Release func(ctx context.Context) error

// Locker serializes multi-document sequences on a key
type Locker interface {
	Acquire(ctx context.Context, key string) (Release, error)
}

// releaseScript deletes the lock only if we still own it
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLockerConfig holds configuration for the Redis locker
type RedisLockerConfig struct {
	RedisClient   *redis.Client
	UUIDGenerator uuid.Generator

	// Prefix is prepended to lock keys, defaults to "moodmeet:lock:"
	Prefix string

	// TTL expires a lock whose holder died
	TTL time.Duration

	// Wait bounds how long Acquire retries a held lock
	Wait time.Duration
}

type redisLocker struct {
	client *redis.Client
	uuid   uuid.Generator
	prefix string
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker creates a lock shared by every process on the same Redis
func NewRedisLocker(cfg *RedisLockerConfig) (*redisLocker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	if cfg.TTL <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix + "lock:"
	}

	return &redisLocker{
		client: cfg.RedisClient,
		uuid:   cfg.UUIDGenerator,
		prefix: prefix,
		ttl:    cfg.TTL,
		wait:   cfg.Wait,
	}, nil
}

// Acquire takes the lock on key, retrying until the wait elapses
func (l *redisLocker) Acquire(ctx context.Context, key string) (Release, error) {
	lockKey := l.prefix + key
	token := l.uuid.NewID()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		if !time.Now().Before(deadline) {
			return nil, ErrLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}

// LocalLocker serializes on a key within this process only
type LocalLocker struct {
	wait time.Duration

	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocalLocker creates an in-process locker. A zero wait blocks until
// the context is done.
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		wait:  wait,
		slots: make(map[string]chan struct{}),
	}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

// Acquire takes the lock on key
func (l *LocalLocker) Acquire(ctx context.Context, key string) (Release, error) {
	ch := l.slot(key)

	var timeout <-chan time.Time
	if l.wait > 0 {
		timer := time.NewTimer(l.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timeout:
		return nil, ErrLockTimeout
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() { <-ch })
		return nil
	}, nil
}

// NoopLocker never blocks. It leaves composite operations unserialized.
type NoopLocker struct{}

// Acquire returns immediately
func (NoopLocker) Acquire(context.Context, string) (Release, error) {
	return func(context.Context) error { return nil }, nil
}
