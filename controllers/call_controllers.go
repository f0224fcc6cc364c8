package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

type CallController struct {
	Store *store.Store
}

func NewCallController(st *store.Store) *CallController {
	return &CallController{Store: st}
}

// RaiseCall -> customer requests staff assistance
func (cc *CallController) RaiseCall(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	call, err := cc.Store.RaiseCall(tableID, body.Type)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Garson çağrıldı", call)
}

// GetCalls -> staff view of all calls, most recent first
func (cc *CallController) GetCalls(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of calls", cc.Store.Calls())
}

// ResolveCall -> one-way pending -> responded, idempotent
func (cc *CallController) ResolveCall(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	callID := c.Param("call_id")
	if err := cc.Store.ResolveCall(callID); err != nil {
		if errors.Is(err, store.ErrCallNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Call resolved", gin.H{"call_id": callID})
}

// ClearResponded -> bulk-remove responded calls, pending ones untouched
func (cc *CallController) ClearResponded(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	removed := cc.Store.ClearRespondedCalls()
	utils.RespondJSON(c, http.StatusOK, "Tamamlanan çağrılar temizlendi", gin.H{"removed": removed})
}
