package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/app"
	"github.com/KirkDiggler/moodmeet/internal/common/clock"
	"github.com/KirkDiggler/moodmeet/internal/config"
	"github.com/KirkDiggler/moodmeet/internal/handlers/api"
	"github.com/KirkDiggler/moodmeet/internal/handlers/discord"
	"github.com/KirkDiggler/moodmeet/internal/logger"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	*rootOptions
	skipSeed bool
}

func newServeCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &serveOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when DISCORD_TOKEN is set, the Discord bot",
		Args:  cobra.NoArgs,
		// usage on a runtime failure only buries the error
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.skipSeed, "skip-seed", false, "do not seed the vocabulary on start")

	return cmd
}

func runServe(ctx context.Context, opts *serveOptions) error {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := openDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Warn("failed to close connections", "error", err)
		}
	}()

	concepts, err := app.NewConcepts(&app.Config{
		Backend:           d.backend,
		StreakPeriod:      cfg.StreakPeriod,
		StrictInvitations: cfg.StrictInvitations,
	})
	if err != nil {
		return err
	}

	if !opts.skipSeed {
		if err := seed(ctx, cfg, concepts, log); err != nil {
			return err
		}
	}

	orch, err := newOrchestrator(cfg, d, concepts, log)
	if err != nil {
		return err
	}

	handler, err := api.New(&api.Config{
		Orchestrator:  orch,
		Logger:        log,
		SecureCookies: cfg.SecureCookies,
	})
	if err != nil {
		return err
	}

	if cfg.DiscordEnabled() {
		bot, err := discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.DiscordApplicationID,
			GuildID:       cfg.DiscordGuildID,
			Orchestrator:  orch,
			Accounts:      concepts.Accounts,
			Sessions:      concepts.Sessions,
			Logger:        log,
		})
		if err != nil {
			return err
		}
		if err := bot.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := bot.Stop(context.WithoutCancel(ctx)); err != nil {
				log.Warn("failed to stop discord bot", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr, "backend", cfg.StoreBackend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newOrchestrator wires the composite operations over the concepts
func newOrchestrator(cfg *config.Config, d *deps, concepts *app.Concepts, log *slog.Logger) (orchestrator.Service, error) {
	locker, err := d.locker(cfg)
	if err != nil {
		return nil, err
	}

	publisher, err := d.publisher(cfg)
	if err != nil {
		return nil, err
	}

	return orchestrator.New(&orchestrator.Config{
		Accounts:    concepts.Accounts,
		Sessions:    concepts.Sessions,
		Events:      concepts.Events,
		RSVPs:       concepts.RSVPs,
		Tagging:     concepts.Tagging,
		Streaks:     concepts.Streaks,
		Upvotes:     concepts.Upvotes,
		Invitations: concepts.Invitations,
		Posts:       concepts.Posts,
		Clock:       clock.New(),
		Locker:      locker,
		Publisher:   publisher,
		Logger:      log,
	})
}
