package hub

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/notifier"
	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

// Event types pushed over the websocket.
const (
	EventNewOrder     = "new_order"
	EventOrderUpdate  = "order_update"
	EventNewCall      = "new_call"
	EventCallUpdate   = "call_update"
	EventMenuUpdate   = "menu_update"
	EventLayoutUpdate = "layout_update"
	EventToast        = "toast"
	EventStaffAlert   = "staff_alert"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// client tags a connection with its audience: staff see everything,
// customers only their own table's traffic.
type client struct {
	role    string // "staff" or "customer"
	tableID string // set for customers
}

// Hub fans store events, staff alerts and layout updates out to connected
// websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]client
}

func New() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]client),
	}
}

func (h *Hub) RegisterStaff(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = client{role: "staff"}
}

func (h *Hub) RegisterCustomer(conn *websocket.Conn, tableID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = client{role: "customer", tableID: tableID}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// HandleStoreEvent is subscribed to the entity store. Toasts go to the
// owning table's customers; everything else goes to staff, with order
// updates mirrored to the affected table.
func (h *Hub) HandleStoreEvent(ev store.Event) {
	switch ev.Type {
	case store.EventToast:
		h.sendToTable(ev.Toast.TableID, Message{Event: EventToast, Data: ev.Toast})
	case store.EventNewOrder:
		h.broadcastStaff(Message{Event: EventNewOrder, Data: ev.Order})
	case store.EventOrderUpdate, store.EventOrderCancelled:
		h.broadcastStaff(Message{Event: EventOrderUpdate, Data: ev.Order})
		h.sendToTable(ev.Order.TableID, Message{Event: EventOrderUpdate, Data: ev.Order})
	case store.EventNewCall:
		h.broadcastStaff(Message{Event: EventNewCall, Data: ev.Call})
	case store.EventCallUpdate, store.EventCallsCleared:
		h.broadcastStaff(Message{Event: EventCallUpdate, Data: ev.Call})
	case store.EventMenuUpdate:
		h.broadcastAll(Message{Event: EventMenuUpdate, Data: ev.Menu})
	}
}

// StaffAlert implements notifier.Sink.
func (h *Hub) StaffAlert(a notifier.Alert) {
	h.broadcastStaff(Message{Event: EventStaffAlert, Data: a})
}

// BroadcastLayout pushes the saved floor plan to staff clients.
func (h *Hub) BroadcastLayout(tables []models.TableLayout) {
	h.broadcastStaff(Message{Event: EventLayoutUpdate, Data: tables})
}

func (h *Hub) broadcastStaff(msg Message) {
	h.send(msg, func(c client) bool { return c.role == "staff" })
}

func (h *Hub) sendToTable(tableID string, msg Message) {
	h.send(msg, func(c client) bool { return c.role == "customer" && c.tableID == tableID })
}

func (h *Hub) broadcastAll(msg Message) {
	h.send(msg, func(c client) bool { return true })
}

func (h *Hub) send(msg Message, want func(client) bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("hub: marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, c := range h.clients {
		if !want(c) {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("hub: write to %s client failed: %v", c.role, err)
		}
	}
}
