// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops background workers. Catalog views are in memory only and
// go with the process.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("stopping background workers")
	stopWorkers()
	if deps.Views != nil {
		logger.Info("dropping catalog views", zap.Int("views", deps.Views.Len()))
	}
	return nil
}
