package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

type MenuController struct {
	Store *store.Store
}

func NewMenuController(st *store.Store) *MenuController {
	return &MenuController{Store: st}
}

// GetMenu -> public menu catalog
func (mc *MenuController) GetMenu(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Menu catalog", mc.Store.Menu())
}

// UpdateMenuImage -> staff replaces one item's image reference
func (mc *MenuController) UpdateMenuImage(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	menuID := c.Param("menu_id")
	var body struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Store.UpdateMenuItemImage(menuID, body.Image); err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %s image updated", menuID)
	utils.RespondJSON(c, http.StatusOK, "Menü fotoğrafı güncellendi", gin.H{"menu_id": menuID})
}
