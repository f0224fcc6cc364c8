package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/notifier"
	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

type StaffController struct {
	Store  *store.Store
	Engine *notifier.Engine
}

func NewStaffController(st *store.Store, engine *notifier.Engine) *StaffController {
	return &StaffController{Store: st, Engine: engine}
}

// Refresh -> reload persisted state and announce arrivals that happened
// while the screen was away. Count increases trigger at most one alert
// per kind.
func (sc *StaffController) Refresh(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	sc.Store.Load(store.SeedMenu())
	sc.Engine.ObserveReload()

	utils.RespondJSON(c, http.StatusOK, "State refreshed", gin.H{
		"orders": sc.Store.Orders(),
		"calls":  sc.Store.Calls(),
	})
}

// Dashboard -> the staff landing counters
func (sc *StaffController) Dashboard(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	pendingCalls, activeOrders := sc.Store.Counts()
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"pending_calls": pendingCalls,
		"active_orders": activeOrders,
	})
}
