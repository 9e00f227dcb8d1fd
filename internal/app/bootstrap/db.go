// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dalemusser/devcatalog/internal/app/resources"
	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/app/system/catalogview"
	"github.com/dalemusser/devcatalog/internal/app/system/limits"
	"github.com/dalemusser/devcatalog/internal/app/system/ratelimit"
	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the data source, the catalog store and the view registry.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	assets := assetSource(appCfg)

	var src catalogstore.Source = assets
	if appCfg.DataURL != "" {
		src = catalogstore.NewHTTPSource(appCfg.DataURL, &http.Client{Timeout: appCfg.FetchTimeout})
		logger.Info("catalog data source: remote", zap.String("data_url", appCfg.DataURL))
	} else {
		logger.Info("catalog data source: local asset", zap.String("path", assets.Path))
	}

	store := catalogstore.New(src)
	deps := DBDeps{
		Source: src,
		Assets: assets,
		Store:  store,
		Views:  catalogview.NewRegistry(store, logger),
	}
	if appCfg.PageLoadLimit > 0 {
		deps.PageLimiter = ratelimit.New(appCfg.PageLoadLimit, limits.PageLoadWindow)
	}
	return deps, nil
}

// assetSource reads data_file when set, else the embedded asset.
func assetSource(appCfg AppConfig) *catalogstore.AssetSource {
	if appCfg.DataFile != "" {
		return catalogstore.NewAssetSource(os.DirFS(filepath.Dir(appCfg.DataFile)), filepath.Base(appCfg.DataFile))
	}
	return catalogstore.NewAssetSource(resources.Assets(), resources.DataPath)
}

// EnsureSchema checks the lookup tables and that the local asset decodes.
// A remote data_url is not checked here; it may be this same server.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if missing := catalogstore.MissingSubcategoryNames(); len(missing) > 0 {
		logger.Warn("subcategories without display names", zap.Strings("subcategories", missing))
	}

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Short(), logger, "asset check")
	defer cancel()

	data, err := deps.Assets.Fetch(ctx, "")
	if err != nil {
		logger.Error("resource asset unreadable", zap.String("path", deps.Assets.Path), zap.Error(err))
		return fmt.Errorf("resource asset: %w", err)
	}
	logger.Info("resource asset loaded", zap.Int("resources", len(data)))
	return nil
}
