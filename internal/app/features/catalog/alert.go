// internal/app/features/catalog/alert.go
package catalog

import (
	"net/http"

	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /alert/confirm – dismiss the view's alert                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleConfirmAlert(w http.ResponseWriter, r *http.Request) {
	id, ctrl := h.view(r)
	ctrl.Hub().ConfirmAction(true)

	if !isHTMX(r) {
		http.Redirect(w, r, httpnav.ResolveBackURL(r, "/"), http.StatusSeeOther)
		return
	}

	token, err := h.Sessions.Token(id)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "sign view token failed", err, "", "/")
		return
	}
	data := alertData{
		BaseVM:    viewdata.NewBaseVM(r, pageTitle, "/").WithView(ctrl.IsMobile(), ctrl.Hub()),
		ViewToken: token,
	}
	h.Snippet(w, "alert_banner", data)
}
