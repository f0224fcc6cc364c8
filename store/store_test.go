package store_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/storage"
	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) (*store.Store, *storage.Gateway) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	gw := storage.NewGateway(db)
	assert.NoError(t, gw.Migrate())

	st := store.New(gw)
	st.Load(store.SeedMenu())
	return st, gw
}

func TestPlaceOrderFromCart(t *testing.T) {
	st, _ := newTestStore(t)

	menu := st.Menu()
	assert.NotEmpty(t, menu)
	kofte := menu[1] // Izgara Köfte, 240

	assert.NoError(t, st.AddToCart("5", kofte.ID))
	assert.NoError(t, st.AddToCart("5", kofte.ID))

	order, err := st.PlaceOrder("5", models.PaymentPending)
	assert.NoError(t, err)
	assert.Equal(t, "5", order.TableID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, kofte.Price*2, order.Total)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// Cart was consumed by the order.
	assert.Empty(t, st.Cart("5"))

	// Newest order comes first.
	orders := st.Orders()
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.PlaceOrder("3", models.PaymentPending)
	assert.ErrorIs(t, err, store.ErrCartEmpty)
	assert.Empty(t, st.Orders())
}

func TestCartAddRemoveNote(t *testing.T) {
	st, _ := newTestStore(t)
	item := st.Menu()[0]

	assert.NoError(t, st.AddToCart("2", item.ID))
	assert.NoError(t, st.AddToCart("2", item.ID))
	st.UpdateCartNote("2", item.ID, "az acılı")

	cart := st.Cart("2")
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "az acılı", cart[0].Note)

	st.RemoveFromCart("2", item.ID)
	cart = st.Cart("2")
	assert.Equal(t, 1, cart[0].Quantity)

	st.RemoveFromCart("2", item.ID)
	assert.Empty(t, st.Cart("2"))

	// Removing from an empty cart is a no-op.
	st.RemoveFromCart("2", item.ID)

	assert.ErrorIs(t, st.AddToCart("2", "no-such-item"), store.ErrMenuItemNotFound)
}

func TestCancelOrderOnlyWhilePending(t *testing.T) {
	st, _ := newTestStore(t)
	item := st.Menu()[0]

	assert.NoError(t, st.AddToCart("7", item.ID))
	order, err := st.PlaceOrder("7", models.PaymentPending)
	assert.NoError(t, err)

	_, err = st.UpdateOrderStatus(order.ID, models.OrderPreparing)
	assert.NoError(t, err)

	assert.ErrorIs(t, st.CancelOrder(order.ID), store.ErrOrderNotPending)
	assert.Len(t, st.Orders(), 1)
}

func TestCancelOrderDeletes(t *testing.T) {
	st, _ := newTestStore(t)
	item := st.Menu()[0]

	assert.NoError(t, st.AddToCart("7", item.ID))
	order, err := st.PlaceOrder("7", models.PaymentPending)
	assert.NoError(t, err)

	assert.NoError(t, st.CancelOrder(order.ID))
	assert.Empty(t, st.Orders())

	// Second cancel finds nothing.
	assert.ErrorIs(t, st.CancelOrder(order.ID), store.ErrOrderNotFound)
}

func TestOrderStatusForwardOnly(t *testing.T) {
	st, _ := newTestStore(t)
	item := st.Menu()[0]

	assert.NoError(t, st.AddToCart("4", item.ID))
	order, err := st.PlaceOrder("4", models.PaymentPending)
	assert.NoError(t, err)

	// Skipping ahead is allowed.
	updated, err := st.UpdateOrderStatus(order.ID, models.OrderServed)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderServed, updated.Status)

	// Backward moves are rejected.
	_, err = st.UpdateOrderStatus(order.ID, models.OrderPreparing)
	assert.ErrorIs(t, err, store.ErrBackwardStatus)

	// Re-applying the same status is a harmless no-op.
	updated, err = st.UpdateOrderStatus(order.ID, models.OrderServed)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderServed, updated.Status)

	_, err = st.UpdateOrderStatus(order.ID, "burnt")
	assert.ErrorIs(t, err, store.ErrUnknownStatus)
}

func TestUpdatePaymentStatus(t *testing.T) {
	st, _ := newTestStore(t)
	item := st.Menu()[0]

	assert.NoError(t, st.AddToCart("9", item.ID))
	order, err := st.PlaceOrder("9", models.PaymentPending)
	assert.NoError(t, err)

	updated, err := st.UpdatePaymentStatus(order.ID, models.PaymentPaid)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	_, err = st.UpdatePaymentStatus(order.ID, "iou")
	assert.ErrorIs(t, err, store.ErrUnknownPayment)
}

func TestWaiterCallLifecycle(t *testing.T) {
	st, _ := newTestStore(t)

	call, err := st.RaiseCall("6", models.CallWater)
	assert.NoError(t, err)
	assert.Equal(t, models.CallPending, call.Status)

	_, err = st.RaiseCall("6", "juggling")
	assert.ErrorIs(t, err, store.ErrUnknownCallType)

	assert.NoError(t, st.ResolveCall(call.ID))
	// Resolving twice stays responded.
	assert.NoError(t, st.ResolveCall(call.ID))
	assert.Equal(t, models.CallResponded, st.Calls()[0].Status)

	assert.ErrorIs(t, st.ResolveCall("missing"), store.ErrCallNotFound)
}

func TestClearRespondedCallsKeepsPending(t *testing.T) {
	st, _ := newTestStore(t)

	pending, err := st.RaiseCall("1", models.CallHelp)
	assert.NoError(t, err)
	responded, err := st.RaiseCall("2", models.CallBill)
	assert.NoError(t, err)
	assert.NoError(t, st.ResolveCall(responded.ID))

	assert.Equal(t, 1, st.ClearRespondedCalls())

	calls := st.Calls()
	assert.Len(t, calls, 1)
	assert.Equal(t, pending.ID, calls[0].ID)
	assert.Equal(t, models.CallPending, calls[0].Status)

	// Nothing left to clear.
	assert.Equal(t, 0, st.ClearRespondedCalls())
}

func TestCountsAndOccupancy(t *testing.T) {
	st, _ := newTestStore(t)
	item := st.Menu()[0]

	assert.NoError(t, st.AddToCart("3", item.ID))
	order, err := st.PlaceOrder("3", models.PaymentPending)
	assert.NoError(t, err)
	_, err = st.RaiseCall("3", models.CallHelp)
	assert.NoError(t, err)

	pendingCalls, activeOrders := st.Counts()
	assert.Equal(t, 1, pendingCalls)
	assert.Equal(t, 1, activeOrders)

	assert.Equal(t, order.Total, st.OpenBillForTable("3"))
	assert.Len(t, st.ActiveOrdersForTable("3"), 1)
	assert.Len(t, st.PendingCallsForTable("3"), 1)

	// Completed orders drop off the live bill.
	_, err = st.UpdateOrderStatus(order.ID, models.OrderCompleted)
	assert.NoError(t, err)
	assert.Equal(t, 0, st.OpenBillForTable("3"))
	_, activeOrders = st.Counts()
	assert.Equal(t, 0, activeOrders)
}

func TestPersistenceAcrossReload(t *testing.T) {
	st, gw := newTestStore(t)
	item := st.Menu()[0]

	assert.NoError(t, st.AddToCart("8", item.ID))
	order, err := st.PlaceOrder("8", models.PaymentPending)
	assert.NoError(t, err)
	call, err := st.RaiseCall("8", models.CallBill)
	assert.NoError(t, err)

	// A fresh store over the same gateway sees the persisted state.
	reloaded := store.New(gw)
	reloaded.Load(store.SeedMenu())

	orders := reloaded.Orders()
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, order.Total, orders[0].Total)
	assert.True(t, order.CreatedAt.Equal(orders[0].CreatedAt))

	calls := reloaded.Calls()
	assert.Len(t, calls, 1)
	assert.Equal(t, call.ID, calls[0].ID)
}

func TestStoreEventsEmitted(t *testing.T) {
	st, _ := newTestStore(t)
	item := st.Menu()[0]

	var types []string
	st.Subscribe(func(ev store.Event) {
		types = append(types, ev.Type)
	})

	assert.NoError(t, st.AddToCart("1", item.ID))
	_, err := st.PlaceOrder("1", models.PaymentPending)
	assert.NoError(t, err)

	assert.Equal(t, []string{store.EventNewOrder, store.EventToast}, types)
}
