package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

type CartController struct {
	Store *store.Store
}

func NewCartController(st *store.Store) *CartController {
	return &CartController{Store: st}
}

// GetCart -> the table's in-progress cart plus its running total
func (cc *CartController) GetCart(c *gin.Context) {
	tableID := c.Param("table_id")
	cart := cc.Store.Cart(tableID)

	total := 0
	for _, item := range cart {
		total += item.Price * item.Quantity
	}

	utils.RespondJSON(c, http.StatusOK, "Cart", gin.H{
		"items": cart,
		"total": total,
	})
}

// AddItem -> add one unit of a menu item
func (cc *CartController) AddItem(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Store.AddToCart(tableID, body.MenuItemID); err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added", gin.H{"items": cc.Store.Cart(tableID)})
}

// RemoveItem -> drop one unit of a menu item
func (cc *CartController) RemoveItem(c *gin.Context) {
	tableID := c.Param("table_id")
	cc.Store.RemoveFromCart(tableID, c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Item removed", gin.H{"items": cc.Store.Cart(tableID)})
}

// UpdateNote -> free-text note on a cart line
func (cc *CartController) UpdateNote(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Store.UpdateCartNote(tableID, c.Param("item_id"), body.Note)
	utils.RespondJSON(c, http.StatusOK, "Note updated", gin.H{"items": cc.Store.Cart(tableID)})
}
