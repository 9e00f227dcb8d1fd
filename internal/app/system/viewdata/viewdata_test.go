package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/devcatalog/internal/app/system/notify"
	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
)

func TestNewBaseVM(t *testing.T) {
	req := httptest.NewRequest("GET", "/categoria/design", nil)
	vm := viewdata.NewBaseVM(req, "Catálogo", "/")

	if vm.Title != "Catálogo" {
		t.Errorf("Title = %q", vm.Title)
	}
	if vm.SiteName == "" {
		t.Error("SiteName should default")
	}
	if vm.BackURL == "" {
		t.Error("BackURL should fall back to the default")
	}
	if vm.Alert != nil || vm.IsMobile {
		t.Error("layout fields should start empty")
	}
}

func TestInit_IgnoresEmpty(t *testing.T) {
	viewdata.Init("Mis recursos")
	viewdata.Init("")
	if got := viewdata.SiteName(); got != "Mis recursos" {
		t.Errorf("SiteName = %q, want Mis recursos", got)
	}
	viewdata.Init(viewdata.DefaultSiteName)
}

func TestWithView_CopiesAlert(t *testing.T) {
	hub := notify.New()
	defer hub.Close()
	hub.ShowAlert("No se pudieron cargar los recursos", "Error")

	vm := viewdata.BaseVM{}.WithView(true, hub)
	if !vm.IsMobile {
		t.Error("IsMobile not copied")
	}
	if vm.Alert == nil || vm.Alert.Title != "Error" {
		t.Errorf("Alert = %+v", vm.Alert)
	}

	hub.ConfirmAction(true)
	if vm = (viewdata.BaseVM{}).WithView(false, hub); vm.Alert != nil {
		t.Error("confirmed alert should be cleared")
	}
	if vm = (viewdata.BaseVM{}).WithView(false, nil); vm.Alert != nil {
		t.Error("nil hub yields no alert")
	}
}
