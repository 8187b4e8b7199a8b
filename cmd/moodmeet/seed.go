package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/moodmeet/internal/app"
	"github.com/KirkDiggler/moodmeet/internal/config"
	"github.com/KirkDiggler/moodmeet/internal/logger"
	"github.com/spf13/cobra"
)

func newSeedCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the predefined moods and categories",
		Long: `Create the predefined moods and categories, with a tag for each.

Seeding is idempotent: existing entries are left alone. Set SEED_FILE to a
YAML vocabulary to replace the built-in one.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootOpts.envFiles...)
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg, logger.Setup(cfg.LogLevel))
		},
	}
}

func runSeed(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	d, err := openDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	concepts, err := app.NewConcepts(&app.Config{
		Backend:           d.backend,
		StreakPeriod:      cfg.StreakPeriod,
		StrictInvitations: cfg.StrictInvitations,
	})
	if err != nil {
		return err
	}

	return seed(ctx, cfg, concepts, log)
}
