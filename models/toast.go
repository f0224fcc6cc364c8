package models

// Toast severities.
const (
	ToastSuccess = "success"
	ToastInfo    = "info"
	ToastWarning = "warning"
)

// Toast is a short customer-facing message emitted on notable transitions.
// Clients auto-dismiss it after DisplayMillis.
type Toast struct {
	ID            string `json:"id"`
	TableID       string `json:"table_id"`
	Message       string `json:"message"`
	Type          string `json:"type"`
	DisplayMillis int    `json:"display_millis"`
}

// ToastDisplayMillis is the fixed auto-dismiss duration.
const ToastDisplayMillis = 4000
