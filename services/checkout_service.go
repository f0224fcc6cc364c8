package services

import (
	"time"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

// CheckoutService runs the simulated card payment flow: a processing
// pause, a success pause, then the order is finalized as paid. The
// sequence runs asynchronously so other state updates are never blocked,
// and it cannot be cancelled once started.
type CheckoutService struct {
	Store *store.Store

	// Delays exist purely for UX pacing; tests zero them.
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
}

func NewCheckoutService(st *store.Store) *CheckoutService {
	return &CheckoutService{
		Store:           st,
		ProcessingDelay: 1500 * time.Millisecond,
		SuccessDelay:    2 * time.Second,
	}
}

// Begin validates the cart and kicks off the payment simulation. The
// order itself is placed only at the end of the sequence.
func (cs *CheckoutService) Begin(tableID string) error {
	if len(cs.Store.Cart(tableID)) == 0 {
		return store.ErrCartEmpty
	}

	go cs.run(tableID)
	return nil
}

func (cs *CheckoutService) run(tableID string) {
	time.Sleep(cs.ProcessingDelay)
	time.Sleep(cs.SuccessDelay)

	if _, err := cs.Store.PlaceOrder(tableID, models.PaymentPaid); err != nil {
		// Cart emptied mid-flight; nothing to finalize.
		utils.InfoLogger.Printf("Checkout for table %s finished without an order: %v", tableID, err)
	}
}
