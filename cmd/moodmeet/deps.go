package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/moodmeet/internal/app"
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/config"
	"github.com/KirkDiggler/moodmeet/internal/services/activity"
	"github.com/KirkDiggler/moodmeet/internal/services/tagging"
	"github.com/KirkDiggler/moodmeet/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/redis/rueidis"
)

// deps holds the process-wide connections and closes them in reverse order
type deps struct {
	backend store.Backend
	redis   *redis.Client
	closers []func() error
}

func (d *deps) onClose(fn func() error) {
	d.closers = append(d.closers, fn)
}

func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

// openDeps connects the configured storage backend
func openDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	d := &deps{}

	switch cfg.StoreBackend {
	case config.BackendRedis:
		d.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		d.onClose(d.redis.Close)

		backend, err := store.NewRedisBackend(&store.RedisBackendConfig{RedisClient: d.redis})
		if err != nil {
			_ = d.Close()
			return nil, err
		}
		d.backend = backend

	case config.BackendSQLite:
		db, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		d.onClose(db.Close)

		backend, err := store.NewSQLiteBackend(&store.SQLiteBackendConfig{DB: db})
		if err != nil {
			_ = d.Close()
			return nil, err
		}
		d.backend = backend

	case config.BackendPostgres:
		pool, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		d.onClose(func() error {
			pool.Close()
			return nil
		})

		backend, err := store.NewPostgresBackend(&store.PostgresBackendConfig{Pool: pool})
		if err != nil {
			_ = d.Close()
			return nil, err
		}
		d.backend = backend

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return d, nil
}

// locker picks how event writes are serialized. Redis deployments share
// the lock across processes.
func (d *deps) locker(cfg *config.Config) (store.Locker, error) {
	if !cfg.SerializeEventWrites {
		return store.NoopLocker{}, nil
	}

	if d.redis != nil {
		return store.NewRedisLocker(&store.RedisLockerConfig{
			RedisClient:   d.redis,
			UUIDGenerator: uuid.New(),
			TTL:           cfg.EventLockTTL,
			Wait:          cfg.EventLockWait,
		})
	}

	return store.NewLocalLocker(cfg.EventLockWait), nil
}

// publisher writes activity to a Redis stream when enabled
func (d *deps) publisher(cfg *config.Config) (activity.Publisher, error) {
	if !cfg.ActivityStreamEnabled {
		return activity.Noop{}, nil
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{cfg.RedisAddr},
		Password:     cfg.RedisPassword,
		SelectDB:     cfg.RedisDB,
		DisableCache: true, // the stream is write-only
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect activity stream: %w", err)
	}

	publisher, err := activity.New(&activity.Config{
		Client: client,
		Stream: cfg.ActivityStreamKey,
		MaxLen: cfg.ActivityStreamMaxLen,
	})
	if err != nil {
		client.Close()
		return nil, err
	}
	d.onClose(func() error {
		publisher.Close()
		return nil
	})

	return publisher, nil
}

// vocabulary reads SEED_FILE, or the built-in vocabulary when unset
func vocabulary(cfg *config.Config) (*tagging.Vocabulary, error) {
	if cfg.SeedFile == "" {
		return tagging.DefaultVocabulary()
	}

	f, err := os.Open(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return tagging.LoadVocabulary(f)
}

// seed loads the vocabulary; existing moods and categories are kept
func seed(ctx context.Context, cfg *config.Config, concepts *app.Concepts, log *slog.Logger) error {
	vocab, err := vocabulary(cfg)
	if err != nil {
		return err
	}

	out, err := concepts.Tagging.Seed(ctx, &tagging.SeedInput{Vocabulary: vocab})
	if err != nil {
		return fmt.Errorf("failed to seed vocabulary: %w", err)
	}

	log.Info("vocabulary seeded",
		"moods_created", out.MoodsCreated,
		"categories_created", out.CategoriesCreated,
	)
	return nil
}
