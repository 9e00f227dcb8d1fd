// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/devcatalog/internal/app/system/notify"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is used until Init is called.
const DefaultSiteName = "Recursos para desarrolladores"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// Layout
	IsMobile bool

	// Pending alert banner for the current view, if any.
	Alert *notify.Alert
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
)

// Init sets the site name shown in the layout. Call once from bootstrap.
func Init(name string) {
	if name == "" {
		return
	}
	mu.Lock()
	siteName = name
	mu.Unlock()
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}

// WithView copies the view's layout flag and pending alert into vm.
func (vm BaseVM) WithView(isMobile bool, hub *notify.Hub) BaseVM {
	vm.IsMobile = isMobile
	if hub != nil {
		vm.Alert = hub.CurrentAlert()
	}
	return vm
}
