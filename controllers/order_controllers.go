package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/services"
	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

type OrderController struct {
	Store    *store.Store
	Checkout *services.CheckoutService
}

func NewOrderController(st *store.Store, checkout *services.CheckoutService) *OrderController {
	return &OrderController{Store: st, Checkout: checkout}
}

// PlaceOrder -> customer submits the cart, payment still pending
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	tableID := c.Param("table_id")

	order, err := oc.Store.PlaceOrder(tableID, models.PaymentPending)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// BeginCheckout -> simulated card payment; the order is finalized paid
// when the flow completes
func (oc *OrderController) BeginCheckout(c *gin.Context) {
	tableID := c.Param("table_id")

	if err := oc.Checkout.Begin(tableID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Ödeme işleniyor", gin.H{"table_id": tableID})
}

// GetTableOrders -> the customer's own orders, most recent first
func (oc *OrderController) GetTableOrders(c *gin.Context) {
	tableID := c.Param("table_id")
	utils.RespondJSON(c, http.StatusOK, "Orders for table", oc.Store.OrdersForTable(tableID))
}

// CancelOrder -> customer cancels a still-pending order; cancellation is
// deletion
func (oc *OrderController) CancelOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	err := oc.Store.CancelOrder(orderID)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, store.ErrOrderNotPending):
		utils.RespondError(c, http.StatusConflict, err)
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
	default:
		utils.RespondJSON(c, http.StatusOK, "Order cancelled", gin.H{"order_id": orderID})
	}
}

// GetAllOrders -> staff list, most recent first
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Store.Orders())
}

// UpdateOrderStatus -> staff advances the lifecycle (forward-only)
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	orderID := c.Param("order_id")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.UpdateOrderStatus(orderID, body.Status)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case err != nil:
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.InfoLogger.Printf("Order %s status changed to %s", order.ID, order.Status)
		utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
	}
}

// UpdatePaymentStatus -> staff flips payment state
func (oc *OrderController) UpdatePaymentStatus(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	orderID := c.Param("order_id")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.UpdatePaymentStatus(orderID, body.Status)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case err != nil:
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondJSON(c, http.StatusOK, "Payment status updated", order)
	}
}
