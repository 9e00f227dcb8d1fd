// internal/app/resources/resources.go
package resources

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// DataPath is the resource list inside FS.
const DataPath = "assets/data.json"

// Embed the shared layout templates and the resource asset.
//
//go:embed templates/*.gohtml assets/data.json
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the layout set. Safe to call more than once.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}

// Assets returns the embedded filesystem holding DataPath.
func Assets() fs.FS {
	return FS
}
