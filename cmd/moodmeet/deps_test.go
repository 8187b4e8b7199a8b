package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/moodmeet/internal/app"
	"github.com/KirkDiggler/moodmeet/internal/config"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/activity"
	"github.com/KirkDiggler/moodmeet/internal/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	cfg.StoreBackend = backend
	cfg.SQLitePath = filepath.Join(t.TempDir(), "moodmeet.db")
	return cfg
}

func TestSeedIsIdempotentOnSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendSQLite)
	log := slog.New(slog.DiscardHandler)

	require.NoError(t, runSeed(ctx, cfg, log))
	require.NoError(t, runSeed(ctx, cfg, log))

	d, err := openDeps(ctx, cfg)
	require.NoError(t, err)
	defer d.Close()

	concepts, err := app.NewConcepts(&app.Config{Backend: d.backend})
	require.NoError(t, err)

	moods, err := concepts.Tagging.ListMoods(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, moods)

	seen := make(map[string]bool)
	for _, mood := range moods {
		assert.False(t, seen[mood.ID], "mood %s seeded twice", mood.ID)
		seen[mood.ID] = true
	}
}

func TestSeedFile(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendSQLite)
	cfg.SeedFile = filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(cfg.SeedFile, []byte(`
moods:
  - id: giddy
    name: Giddy
categories:
  - id: board-games
    name: Board Games
`), 0o600))

	d, err := openDeps(ctx, cfg)
	require.NoError(t, err)
	defer d.Close()

	concepts, err := app.NewConcepts(&app.Config{Backend: d.backend})
	require.NoError(t, err)
	require.NoError(t, seed(ctx, cfg, concepts, slog.New(slog.DiscardHandler)))

	moods, err := concepts.Tagging.ListMoods(ctx)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, "giddy", moods[0].ID)
}

func TestLockerFollowsBackend(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig(t, config.BackendSQLite)
	d, err := openDeps(ctx, cfg)
	require.NoError(t, err)
	defer d.Close()

	locker, err := d.locker(cfg)
	require.NoError(t, err)
	assert.IsType(t, &store.LocalLocker{}, locker)

	cfg.SerializeEventWrites = false
	locker, err = d.locker(cfg)
	require.NoError(t, err)
	assert.IsType(t, store.NoopLocker{}, locker)
}

func TestRedisDeps(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := testConfig(t, config.BackendRedis)
	cfg.RedisAddr = mr.Addr()
	cfg.ActivityStreamEnabled = true

	d, err := openDeps(ctx, cfg)
	require.NoError(t, err)
	defer d.Close()

	locker, err := d.locker(cfg)
	require.NoError(t, err)
	release, err := locker.Acquire(ctx, "event:e1")
	require.NoError(t, err)
	require.NoError(t, release(ctx))

	publisher, err := d.publisher(cfg)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, &models.Activity{Action: models.ActivityRSVP, UserID: "u1", EventID: "e1"}))

	entries, err := mr.Stream(cfg.ActivityStreamKey)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPublisherDisabled(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)
	d := &deps{}

	publisher, err := d.publisher(cfg)
	require.NoError(t, err)
	assert.Equal(t, activity.Noop{}, publisher)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := newRootCommand()

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	assert.NotNil(t, serve.Flags().Lookup("skip-seed"))

	seedCmd, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)
	assert.Equal(t, "seed", seedCmd.Name())
}
