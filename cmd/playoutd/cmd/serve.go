package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fernwood/playoutd/internal/airsink"
	"github.com/fernwood/playoutd/internal/airsink/grpcsink"
	"github.com/fernwood/playoutd/internal/asrun"
	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/channel"
	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/config"
	"github.com/fernwood/playoutd/internal/database"
	"github.com/fernwood/playoutd/internal/database/migrations"
	"github.com/fernwood/playoutd/internal/horizon"
	internalhttp "github.com/fernwood/playoutd/internal/http"
	"github.com/fernwood/playoutd/internal/http/handlers"
	"github.com/fernwood/playoutd/internal/planner"
	"github.com/fernwood/playoutd/internal/repository"
	"github.com/fernwood/playoutd/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the playoutd daemon",
	Long: `Start the playout scheduler and its read-only HTTP API.

The daemon keeps every channel's execution window extended ahead of the
playhead, connects to the AIR rendering engine, and serves EPG, window, and
runtime status endpoints.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("dsn", "playoutd.db", "Database DSN")
	serveCmd.Flags().String("sink-address", "localhost:9920", "AIR sink gRPC address")

	mustBindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	mustBindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	mustBindPFlag("database.dsn", serveCmd.Flags().Lookup("dsn"))
	mustBindPFlag("sink.address", serveCmd.Flags().Lookup("sink-address"))
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := slog.Default()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.New(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	migrator := migrations.NewMigrator(db.DB, logger)
	migrator.RegisterAll(migrations.AllMigrations())
	if err := migrator.Up(context.Background()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Repositories and planning pipeline.
	plans := repository.NewSchedulePlanRepository(db.DB)
	sequences := repository.NewSequenceStateRepository(db.DB)
	assetRepo := repository.NewAssetRepository(db.DB)
	compiled := repository.NewCompiledProgramLogRepository(db.DB)
	txLog := repository.NewTransmissionLogRepository(db.DB)
	traffic := repository.NewTrafficRepository(db.DB)
	asRunRepo := repository.NewAsRunRepository(db.DB)

	library := assets.NewLibrary(assetRepo)
	scheduler := planner.New(library, planner.NewSequenceStore(sequences), traffic, logger)

	masterClock := clock.NewSystemClock()

	hz, err := horizon.NewManager(cfg.Horizon, horizon.Deps{
		Clock:    masterClock,
		Planner:  scheduler,
		Plans:    plans,
		Compiled: compiled,
		TxLog:    txLog,
		Traffic:  traffic,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("initializing horizon manager: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slugs, err := plans.GetChannels(ctx)
	if err != nil {
		return fmt.Errorf("listing channels: %w", err)
	}
	for _, slug := range slugs {
		channelCfg, err := planner.ChannelConfigFromPlayout(slug, cfg.Playout)
		if err != nil {
			return fmt.Errorf("channel %s: %w", slug, err)
		}
		hz.Register(channelCfg)
	}

	sink, err := grpcsink.Dial(ctx, cfg.Sink, logger)
	if err != nil {
		return fmt.Errorf("connecting to AIR sink: %w", err)
	}
	defer sink.Close()

	asRunLog := asrun.NewWriter(asRunRepo, logger)

	managers := make(map[string]*channel.Manager, len(slugs))
	for _, slug := range slugs {
		managers[slug] = channel.NewManager(channel.Config{
			ChannelSlug: slug,
			Format: airsink.ProgramFormat{
				Width:        1920,
				Height:       1080,
				FrameRateNum: cfg.Playout.FrameRateNum,
				FrameRateDen: cfg.Playout.FrameRateDen,
				AspectPolicy: cfg.Playout.AspectPolicy,
				SampleRate:   48000,
				Channels:     2,
			},
			Transport:        "mpegts",
			Endpoint:         fmt.Sprintf("ring://%s", slug),
			PreloadBudget:    cfg.Playout.PreloadBudget,
			StopDeadline:     cfg.Playout.StopDeadline,
			FeedAheadHorizon: cfg.Playout.FeedAheadHorizon,
			Ring:             airsink.NewTsRingBuffer(cfg.Sink.RingBufferMaxBytes.Int64()),
		}, channel.Deps{
			Clock:   masterClock,
			Sink:    sink,
			Entries: hz,
			AsRun:   asRunLog,
			Logger:  logger,
		})
	}
	defer func() {
		for _, m := range managers {
			if err := m.Stop(context.Background()); err != nil {
				logger.Error("stopping channel", slog.Any("error", err))
			}
		}
	}()

	// HTTP surface.
	server := internalhttp.NewServer(internalhttp.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger, version.Version)

	handlers.NewHealthHandler(version.Version).WithDB(db.DB).Register(server.API())
	handlers.NewEPGHandler(compiled, library, logger).Register(server.API())
	handlers.NewWindowHandler(hz, masterClock).Register(server.API())
	handlers.NewChannelHandler(managers).Register(server.API())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
		cancel()
	}()

	go func() {
		if err := hz.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("horizon loop exited", slog.Any("error", err))
		}
	}()

	logger.Info("starting playoutd",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.Int("channels", len(slugs)),
		slog.String("authority_mode", cfg.Horizon.AuthorityMode),
		slog.String("version", version.Version),
	)

	return server.ListenAndServe(ctx)
}
