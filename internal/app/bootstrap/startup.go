// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"sync"

	"github.com/dalemusser/devcatalog/internal/app/resources"
	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
	"github.com/dalemusser/devcatalog/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

var (
	workersMu   sync.Mutex
	viewCleanup *workers.ViewCleanup
)

// Startup runs one-time application initialization after the data source is
// built and the asset checked, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	timeouts.Configure(timeouts.Config{Fetch: appCfg.FetchTimeout})
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n))
	}

	startWorkers(deps, appCfg, logger)
	return nil
}

func startWorkers(deps DBDeps, appCfg AppConfig, logger *zap.Logger) {
	workersMu.Lock()
	defer workersMu.Unlock()
	if viewCleanup != nil {
		return
	}
	viewCleanup = workers.NewViewCleanup(deps.Views, logger, appCfg.ViewSweepInterval, appCfg.ViewIdleTTL)
	if deps.PageLimiter != nil {
		viewCleanup.AlsoPrune(deps.PageLimiter)
	}
	viewCleanup.Start()
}

func stopWorkers() {
	workersMu.Lock()
	defer workersMu.Unlock()
	if viewCleanup != nil {
		viewCleanup.Stop()
		viewCleanup = nil
	}
}
