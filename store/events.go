package store

import "github.com/uguryukselwork/quickserve/models"

// Event types emitted by the store. Arrival events (new order, new call)
// are raised directly inside the mutation that created the entity, so
// observers never have to infer arrivals from count diffs.
const (
	EventNewOrder       = "new_order"
	EventOrderUpdate    = "order_update"
	EventOrderCancelled = "order_cancelled"
	EventNewCall        = "new_call"
	EventCallUpdate     = "call_update"
	EventCallsCleared   = "calls_cleared"
	EventMenuUpdate     = "menu_update"
	EventToast          = "toast"
)

type Event struct {
	Type  string             `json:"type"`
	Order *models.Order      `json:"order,omitempty"`
	Call  *models.WaiterCall `json:"call,omitempty"`
	Menu  []models.MenuItem  `json:"menu,omitempty"`
	Toast *models.Toast      `json:"toast,omitempty"`
}

// Listener receives store events after the mutation that produced them has
// committed and persisted.
type Listener func(Event)
