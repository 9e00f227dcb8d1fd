// Package notify bundles the per-view broadcast slots: the selected
// resource, the current alert and the alert confirmation flag.
package notify

import (
	"github.com/dalemusser/devcatalog/internal/app/system/broadcast"
	"github.com/dalemusser/devcatalog/internal/domain/models"
)

// Alert is a message with a title, shown as a dismissible banner.
type Alert struct {
	Message string
	Title   string
}

// Hub holds the slots for one view. The zero value is not usable; call New.
type Hub struct {
	Selected *broadcast.Slot[*models.Resource]
	Alert    *broadcast.Slot[*Alert]
	Confirm  *broadcast.Slot[bool]

	stop func()
}

// New returns a hub with empty slots. Confirming clears the current alert.
func New() *Hub {
	h := &Hub{
		Selected: broadcast.New[*models.Resource](nil),
		Alert:    broadcast.New[*Alert](nil),
		Confirm:  broadcast.New(false),
	}
	h.stop = h.Confirm.Subscribe(func(ok bool) {
		if ok {
			h.Alert.Publish(nil)
		}
	})
	return h
}

// SetData publishes the selected resource.
func (h *Hub) SetData(r models.Resource) {
	h.Selected.Publish(&r)
}

// Data returns the last selected resource, or nil.
func (h *Hub) Data() *models.Resource {
	return h.Selected.Value()
}

// ShowAlert publishes a new alert and resets the confirmation flag.
func (h *Hub) ShowAlert(message, title string) {
	h.Confirm.Publish(false)
	h.Alert.Publish(&Alert{Message: message, Title: title})
}

// CurrentAlert returns the pending alert, or nil.
func (h *Hub) CurrentAlert() *Alert {
	return h.Alert.Value()
}

// ConfirmAction publishes the confirmation flag.
func (h *Hub) ConfirmAction(confirmed bool) {
	h.Confirm.Publish(confirmed)
}

// Close detaches the hub's internal subscription.
func (h *Hub) Close() {
	if h.stop != nil {
		h.stop()
	}
}
