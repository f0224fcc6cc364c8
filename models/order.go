package models

import "time"

// Order lifecycle. Transitions are forward-only: staff may skip ahead
// (pending -> completed) but never move an order backwards.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderServed    = "served"
	OrderCompleted = "completed"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

var orderStatusRank = map[string]int{
	OrderPending:   0,
	OrderPreparing: 1,
	OrderServed:    2,
	OrderCompleted: 3,
}

// ValidOrderStatus reports whether s names a known lifecycle stage.
func ValidOrderStatus(s string) bool {
	_, ok := orderStatusRank[s]
	return ok
}

// OrderStatusForward reports whether moving from -> to advances the
// lifecycle. Equal stages count as forward so repeated calls stay no-ops.
func OrderStatusForward(from, to string) bool {
	return orderStatusRank[to] >= orderStatusRank[from]
}

// Order is an immutable snapshot of a cart at submission time. Items are
// copied by value so later catalog edits never alter a placed order.
type Order struct {
	ID            string     `json:"id"`
	TableID       string     `json:"table_id"`
	Items         []CartItem `json:"items"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	Total         int        `json:"total"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Active reports whether the order still counts towards the live floor
// view and the table's running bill.
func (o Order) Active() bool {
	return o.Status != OrderCompleted
}
