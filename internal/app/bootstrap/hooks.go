// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires devcatalog into WAFFLE's lifecycle. ConnectDB builds the
// catalog data source rather than a database connection.
var Hooks = app.Hooks[AppConfig, DBDeps]{
	Name:           "devcatalog",
	LoadConfig:     LoadConfig,
	ValidateConfig: ValidateConfig,
	ConnectDB:      ConnectDB,
	EnsureSchema:   EnsureSchema,
	Startup:        Startup,
	BuildHandler:   BuildHandler,
	Shutdown:       Shutdown,
}
