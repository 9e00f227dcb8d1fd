package testutil

import (
	"sync"

	"github.com/dalemusser/devcatalog/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplates boots the template engine over the shared layout and every
// feature set registered by the test binary's imports.
func BootTemplates(t interface {
	Helper()
	Fatalf(string, ...any)
}) {
	t.Helper()
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if bootErr = eng.Boot(zap.NewNop()); bootErr == nil {
			templates.UseEngine(eng, zap.NewNop())
		}
	})
	if bootErr != nil {
		t.Fatalf("boot templates: %v", bootErr)
	}
}
