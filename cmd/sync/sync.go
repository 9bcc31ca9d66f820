package sync

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/pawhub/pawhub/api"
	"github.com/pawhub/pawhub/api/catalog/service"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/pkg/queue"
)

var configFile string
var timeout time.Duration

func init() {
	pf := StartCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c",
		"config/config.yaml", "this parameter is used to start the service application")
	pf.DurationVar(&timeout, "timeout", 10*time.Minute,
		"abort the run when the upstream pull takes longer than this")
}

var StartCmd = &cobra.Command{
	Use:          "sync",
	Short:        "Pull the upstream catalog once and exit",
	Example:      "{execfile} sync -c config/config.yaml",
	SilenceUsage: true,
	PreRun: func(cmd *cobra.Command, args []string) {
		lib.SetConfigPath(configFile)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runSync()
	},
}

func runSync() {
	app := fx.New(
		lib.Module,
		api.Module,
		fx.NopLogger,
		fx.Invoke(func(
			shutdowner fx.Shutdowner,
			logger lib.Logger,
			syncService service.SyncService,
			q *queue.Queue,
		) {
			go func() {
				defer shutdowner.Shutdown()

				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()

				result, err := syncService.Run(ctx)
				if err != nil {
					logger.Zap.Errorf("sync failed: %v", err)
					return
				}

				logger.Zap.Infof(
					"sync finished: %d shelters, %d created, %d updated, %d vanished, %d photos queued",
					result.SheltersUpserted, result.AnimalsCreated,
					result.AnimalsUpdated, result.AnimalsVanished, result.PhotosQueued,
				)

				// let queued photo downloads drain before the app stops
				for q.Pending() > 0 {
					select {
					case <-ctx.Done():
						logger.Zap.Warnf("%d photo downloads still pending at shutdown", q.Pending())
						return
					case <-time.After(200 * time.Millisecond):
					}
				}
			}()
		}),
	)
	app.Run()
}
