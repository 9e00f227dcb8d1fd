// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/app/system/catalogview"
	"github.com/dalemusser/devcatalog/internal/app/system/ratelimit"
)

// DBDeps holds the back-end dependencies for the app. There is no database;
// the backend is the resource data source and the in-memory view registry.
type DBDeps struct {
	// Source is what the catalog store reads from.
	Source catalogstore.Source
	// Assets is the local asset behind /assets/data.json.
	Assets *catalogstore.AssetSource

	Store *catalogstore.Store
	Views *catalogview.Registry

	// PageLimiter is nil when page_load_limit is 0.
	PageLimiter *ratelimit.Limiter
}
