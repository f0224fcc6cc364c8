package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/storage"
	"github.com/uguryukselwork/quickserve/utils"
)

// Store owns the order, waiter-call and menu collections plus the
// per-table in-progress carts. All reads and writes go through its
// methods; raw slices are never handed out. Collections are kept
// most-recent-first. Every mutation persists the affected collection
// through the gateway and emits events after the lock is released.
type Store struct {
	mu sync.Mutex

	orders []models.Order
	calls  []models.WaiterCall
	menu   []models.MenuItem
	carts  map[string][]models.CartItem

	gateway   *storage.Gateway
	listeners []Listener
}

func New(gw *storage.Gateway) *Store {
	return &Store{
		carts:   make(map[string][]models.CartItem),
		gateway: gw,
	}
}

// Subscribe registers a listener for store events. Not safe to call
// concurrently with mutations; wire listeners during startup.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) emit(events ...Event) {
	for _, ev := range events {
		for _, fn := range s.listeners {
			fn(ev)
		}
	}
}

// Load restores the persisted collections. Missing or corrupt snapshots
// leave the defaults in place; the menu falls back to seed when absent.
func (s *Store) Load(seedMenu []models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gateway.Load(storage.KeyOrders, &s.orders) {
		s.orders = nil
	}
	if !s.gateway.Load(storage.KeyCalls, &s.calls) {
		s.calls = nil
	}
	if !s.gateway.Load(storage.KeyMenu, &s.menu) || len(s.menu) == 0 {
		s.menu = append([]models.MenuItem(nil), seedMenu...)
		s.gateway.Save(storage.KeyMenu, s.menu)
	}
}

/*
========================================
 MENU & CART
========================================
*/

func (s *Store) Menu() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MenuItem(nil), s.menu...)
}

// UpdateMenuItemImage replaces the image reference of one catalog item.
// The rest of the catalog is immutable after seeding.
func (s *Store) UpdateMenuItemImage(id, image string) error {
	s.mu.Lock()
	found := false
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu[i].Image = image
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return ErrMenuItemNotFound
	}
	menu := append([]models.MenuItem(nil), s.menu...)
	s.gateway.Save(storage.KeyMenu, s.menu)
	s.mu.Unlock()

	s.emit(Event{Type: EventMenuUpdate, Menu: menu})
	return nil
}

func (s *Store) Cart(tableID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.carts[tableID]...)
}

// AddToCart adds one unit of a menu item to the table's cart, bumping the
// quantity when the item is already present.
func (s *Store) AddToCart(tableID, menuItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item *models.MenuItem
	for i := range s.menu {
		if s.menu[i].ID == menuItemID {
			item = &s.menu[i]
			break
		}
	}
	if item == nil {
		return ErrMenuItemNotFound
	}

	cart := s.carts[tableID]
	for i := range cart {
		if cart[i].ID == menuItemID {
			cart[i].Quantity++
			return nil
		}
	}
	s.carts[tableID] = append(cart, models.CartItem{MenuItem: *item, Quantity: 1})
	return nil
}

// RemoveFromCart removes one unit; the line disappears when the quantity
// reaches zero. Removing an absent item is a no-op.
func (s *Store) RemoveFromCart(tableID, menuItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[tableID]
	for i := range cart {
		if cart[i].ID != menuItemID {
			continue
		}
		if cart[i].Quantity > 1 {
			cart[i].Quantity--
		} else {
			s.carts[tableID] = append(cart[:i], cart[i+1:]...)
		}
		return
	}
}

func (s *Store) UpdateCartNote(tableID, menuItemID, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[tableID]
	for i := range cart {
		if cart[i].ID == menuItemID {
			cart[i].Note = note
			return
		}
	}
}

// CartContext renders the cart as plain text for the assistant service.
func (s *Store) CartContext(tableID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := ""
	for _, item := range s.carts[tableID] {
		ctx += fmt.Sprintf("%dx %s\n", item.Quantity, item.Name)
	}
	return ctx
}

/*
========================================
 ORDER LIFECYCLE
========================================
*/

// PlaceOrder converts the table's cart into an order snapshot. An empty
// cart is a no-op rejection. The new order is prepended (most recent
// first), the cart cleared, and the collection persisted.
func (s *Store) PlaceOrder(tableID, paymentStatus string) (models.Order, error) {
	if paymentStatus != models.PaymentPending && paymentStatus != models.PaymentPaid {
		return models.Order{}, ErrUnknownPayment
	}

	s.mu.Lock()
	cart := s.carts[tableID]
	if len(cart) == 0 {
		s.mu.Unlock()
		return models.Order{}, ErrCartEmpty
	}

	total := 0
	for _, item := range cart {
		total += item.Price * item.Quantity
	}

	order := models.Order{
		ID:            uuid.NewString()[:8],
		TableID:       tableID,
		Items:         append([]models.CartItem(nil), cart...),
		Status:        models.OrderPending,
		PaymentStatus: paymentStatus,
		Total:         total,
		CreatedAt:     time.Now(),
	}
	s.orders = append([]models.Order{order}, s.orders...)
	delete(s.carts, tableID)
	s.gateway.Save(storage.KeyOrders, s.orders)
	s.mu.Unlock()

	utils.InfoLogger.Printf("Order %s placed for table %s (total=%d, payment=%s)",
		order.ID, tableID, total, paymentStatus)

	msg := "Siparişiniz başarıyla alındı!"
	if paymentStatus == models.PaymentPaid {
		msg = "Ödemeniz alındı ve siparişiniz mutfağa iletildi!"
	}
	s.emit(
		Event{Type: EventNewOrder, Order: &order},
		s.toast(tableID, msg, models.ToastSuccess),
	)
	return order, nil
}

// CancelOrder deletes a still-pending order. Anything past pending is a
// non-fatal rejection and a missing order (cancelled twice) is a no-op.
func (s *Store) CancelOrder(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrOrderNotFound
	}
	order := s.orders[idx]
	if order.Status != models.OrderPending {
		s.mu.Unlock()
		return ErrOrderNotPending
	}
	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	s.gateway.Save(storage.KeyOrders, s.orders)
	s.mu.Unlock()

	utils.InfoLogger.Printf("Order %s cancelled by table %s", order.ID, order.TableID)
	s.emit(
		Event{Type: EventOrderCancelled, Order: &order},
		s.toast(order.TableID, "Siparişiniz iptal edildi.", models.ToastWarning),
	)
	return nil
}

// UpdateOrderStatus advances an order's lifecycle stage. Backward moves
// are rejected; forward skips are allowed for staff overrides.
func (s *Store) UpdateOrderStatus(id, next string) (models.Order, error) {
	if !models.ValidOrderStatus(next) {
		return models.Order{}, ErrUnknownStatus
	}

	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}
	if !models.OrderStatusForward(s.orders[idx].Status, next) {
		s.mu.Unlock()
		return models.Order{}, ErrBackwardStatus
	}
	s.orders[idx].Status = next
	order := s.orders[idx]
	s.gateway.Save(storage.KeyOrders, s.orders)
	s.mu.Unlock()

	events := []Event{{Type: EventOrderUpdate, Order: &order}}
	switch next {
	case models.OrderPreparing:
		events = append(events, s.toast(order.TableID,
			fmt.Sprintf("Masa %s: Siparişiniz hazırlanıyor!", order.TableID), models.ToastSuccess))
	case models.OrderServed:
		events = append(events, s.toast(order.TableID,
			fmt.Sprintf("Masa %s: Siparişiniz yolda!", order.TableID), models.ToastSuccess))
	case models.OrderCompleted:
		events = append(events, s.toast(order.TableID,
			fmt.Sprintf("Masa %s: Siparişiniz tamamlandı!", order.TableID), models.ToastInfo))
	}
	s.emit(events...)
	return order, nil
}

// UpdatePaymentStatus flips an order's payment state.
func (s *Store) UpdatePaymentStatus(id, status string) (models.Order, error) {
	if status != models.PaymentPending && status != models.PaymentPaid {
		return models.Order{}, ErrUnknownPayment
	}

	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Order{}, ErrOrderNotFound
	}
	s.orders[idx].PaymentStatus = status
	order := s.orders[idx]
	s.gateway.Save(storage.KeyOrders, s.orders)
	s.mu.Unlock()

	events := []Event{{Type: EventOrderUpdate, Order: &order}}
	if status == models.PaymentPaid {
		events = append(events, s.toast(order.TableID,
			fmt.Sprintf("Masa %s: Ödeme onaylandı. Teşekkürler!", order.TableID), models.ToastSuccess))
	}
	s.emit(events...)
	return order, nil
}

/*
========================================
 WAITER CALLS
========================================
*/

// RaiseCall files a new pending waiter call for the table.
func (s *Store) RaiseCall(tableID, callType string) (models.WaiterCall, error) {
	if !models.ValidCallType(callType) {
		return models.WaiterCall{}, ErrUnknownCallType
	}

	call := models.WaiterCall{
		ID:        uuid.NewString()[:8],
		TableID:   tableID,
		Type:      callType,
		Status:    models.CallPending,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.calls = append([]models.WaiterCall{call}, s.calls...)
	s.gateway.Save(storage.KeyCalls, s.calls)
	s.mu.Unlock()

	utils.InfoLogger.Printf("Waiter call %s raised: table=%s type=%s", call.ID, tableID, callType)
	s.emit(
		Event{Type: EventNewCall, Call: &call},
		s.toast(tableID, "Garson çağrıldı, hemen geliyoruz!", models.ToastInfo),
	)
	return call, nil
}

// ResolveCall marks a call responded. One-way and idempotent.
func (s *Store) ResolveCall(id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.calls {
		if s.calls[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrCallNotFound
	}
	if s.calls[idx].Status == models.CallResponded {
		s.mu.Unlock()
		return nil
	}
	s.calls[idx].Status = models.CallResponded
	call := s.calls[idx]
	s.gateway.Save(storage.KeyCalls, s.calls)
	s.mu.Unlock()

	s.emit(Event{Type: EventCallUpdate, Call: &call})
	return nil
}

// ClearRespondedCalls drops every responded call and keeps all pending
// ones. Idempotent; returns the number removed.
func (s *Store) ClearRespondedCalls() int {
	s.mu.Lock()
	kept := s.calls[:0]
	removed := 0
	for _, c := range s.calls {
		if c.Status == models.CallPending {
			kept = append(kept, c)
		} else {
			removed++
		}
	}
	s.calls = kept
	if removed > 0 {
		s.gateway.Save(storage.KeyCalls, s.calls)
	}
	s.mu.Unlock()

	if removed > 0 {
		s.emit(Event{Type: EventCallsCleared})
	}
	return removed
}

/*
========================================
 READ PATHS
========================================
*/

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) Calls() []models.WaiterCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WaiterCall(nil), s.calls...)
}

func (s *Store) OrdersForTable(tableID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.TableID == tableID {
			out = append(out, o)
		}
	}
	return out
}

// PendingCallsForTable returns the table's unresolved calls.
func (s *Store) PendingCallsForTable(tableID string) []models.WaiterCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.WaiterCall
	for _, c := range s.calls {
		if c.TableID == tableID && c.Status == models.CallPending {
			out = append(out, c)
		}
	}
	return out
}

// ActiveOrdersForTable returns the table's not-yet-completed orders.
func (s *Store) ActiveOrdersForTable(tableID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.TableID == tableID && o.Active() {
			out = append(out, o)
		}
	}
	return out
}

// OpenBillForTable sums the totals of the table's active orders. Completed
// orders drop off the live bill once closed out.
func (s *Store) OpenBillForTable(tableID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, o := range s.orders {
		if o.TableID == tableID && o.Active() {
			total += o.Total
		}
	}
	return total
}

// Counts returns the live pending-call and active-order counts used by the
// notification edge tracker on reload.
func (s *Store) Counts() (pendingCalls, activeOrders int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c.Status == models.CallPending {
			pendingCalls++
		}
	}
	for _, o := range s.orders {
		if o.Active() {
			activeOrders++
		}
	}
	return
}

// NewestPendingCall returns the most recently raised pending call.
func (s *Store) NewestPendingCall() (models.WaiterCall, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c.Status == models.CallPending {
			return c, true
		}
	}
	return models.WaiterCall{}, false
}

// NewestActiveOrder returns the most recently placed active order.
func (s *Store) NewestActiveOrder() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.Active() {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *Store) toast(tableID, message, severity string) Event {
	t := models.Toast{
		ID:            uuid.NewString()[:8],
		TableID:       tableID,
		Message:       message,
		Type:          severity,
		DisplayMillis: models.ToastDisplayMillis,
	}
	return Event{Type: EventToast, Toast: &t}
}
