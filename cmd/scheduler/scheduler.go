// Package scheduler implements the scheduler command that runs full
// syncs on a cron schedule.
package scheduler

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/storesync/cmd/common"
)

// Command returns the scheduler command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduler",
		Short: "Run syncs on a cron schedule",
		Long: `Scheduler runs the full catalog sync on the configured cron
expression until interrupted with Ctrl+C. In-flight syncs finish
before shutdown.`,
		RunE: runScheduler,
	}
}

// runScheduler executes the scheduler command.
func runScheduler(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronExpr := deps.Config.GetScheduleConfig().Cron
	scheduler := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err = scheduler.AddFunc(cronExpr, func() {
		orchestrator, buildErr := common.BuildOrchestrator(deps, repos)
		if buildErr != nil {
			deps.Logger.Error("failed to build orchestrator", "error", buildErr)
			return
		}

		summary, runErr := orchestrator.Run(ctx, "")
		if runErr != nil {
			deps.Logger.Error("scheduled sync failed", "error", runErr)
			return
		}

		deps.Logger.Info("scheduled sync finished",
			"run_id", summary.RunID,
			"succeeded", summary.StoresSucceeded,
			"failed", summary.StoresFailed,
			"products_written", summary.ProductsWritten,
		)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}

	deps.Logger.Info("scheduler started", "cron", cronExpr)
	scheduler.Start()

	<-ctx.Done()

	deps.Logger.Info("shutdown signal received, waiting for in-flight sync")
	<-scheduler.Stop().Done()
	deps.Logger.Info("scheduler stopped")

	return nil
}
