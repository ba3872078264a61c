package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/config"
	"github.com/fernwood/playoutd/internal/database"
	"github.com/fernwood/playoutd/internal/database/migrations"
	"github.com/fernwood/playoutd/internal/horizon"
	"github.com/fernwood/playoutd/internal/planner"
	"github.com/fernwood/playoutd/internal/repository"
)

var (
	planChannel string
	planDay     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compile one broadcast day offline",
	Long: `Resolve, fill, and lock the transmission log for a single channel and
broadcast day without starting the daemon.

The locked artifact is written to the database; replanning the same day is a
no-op because locked logs are immutable.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planChannel, "channel", "", "channel slug to plan (required)")
	planCmd.Flags().StringVar(&planDay, "day", "", "broadcast day, YYYY-MM-DD (default: today)")
	_ = planCmd.MarkFlagRequired("channel")
}

func runPlan(_ *cobra.Command, _ []string) error {
	logger := slog.Default()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	if planDay != "" {
		day, err = time.Parse("2006-01-02", planDay)
		if err != nil {
			return fmt.Errorf("parsing --day: %w", err)
		}
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

	library := assets.NewLibrary(repository.NewAssetRepository(db.DB))
	traffic := repository.NewTrafficRepository(db.DB)
	scheduler := planner.New(library,
		planner.NewSequenceStore(repository.NewSequenceStateRepository(db.DB)),
		traffic, logger)

	hz, err := horizon.NewManager(cfg.Horizon, horizon.Deps{
		Clock:    clock.NewSystemClock(),
		Planner:  scheduler,
		Plans:    repository.NewSchedulePlanRepository(db.DB),
		Compiled: repository.NewCompiledProgramLogRepository(db.DB),
		TxLog:    repository.NewTransmissionLogRepository(db.DB),
		Traffic:  traffic,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("initializing horizon manager: %w", err)
	}

	channelCfg, err := planner.ChannelConfigFromPlayout(planChannel, cfg.Playout)
	if err != nil {
		return fmt.Errorf("channel %s: %w", planChannel, err)
	}
	hz.Register(channelCfg)

	if err := hz.PlanBroadcastDay(context.Background(), planChannel, day); err != nil {
		return fmt.Errorf("planning %s for %s: %w", day.Format("2006-01-02"), planChannel, err)
	}

	fmt.Printf("compiled %s for %s\n", day.Format("2006-01-02"), planChannel)
	return nil
}
