package models

import "time"

// Waiter call request types.
const (
	CallHelp    = "help"
	CallWater   = "water"
	CallBill    = "bill"
	CallClean   = "clean"
	CallCutlery = "cutlery"
	CallOther   = "other"
)

const (
	CallPending   = "pending"
	CallResponded = "responded"
)

// CallLabels maps a request type to the staff-facing label used in lists
// and spoken announcements.
var CallLabels = map[string]string{
	CallHelp:    "Yardım İstedi",
	CallWater:   "Su İstedi",
	CallBill:    "Hesap İstedi",
	CallClean:   "Temizlik İstedi",
	CallCutlery: "Servis İstedi",
	CallOther:   "Diğer İstek",
}

// ValidCallType reports whether t is a known request type.
func ValidCallType(t string) bool {
	_, ok := CallLabels[t]
	return ok
}

// WaiterCall is a staff-assistance request. It is resolved, never deleted,
// except through the explicit bulk clear of responded calls.
type WaiterCall struct {
	ID        string    `json:"id"`
	TableID   string    `json:"table_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
