package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/uguryukselwork/quickserve/controllers"
	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/store"
)

func setupCallRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	callCtrl := controllers.NewCallController(st)

	r.POST("/tables/:table_id/calls", callCtrl.RaiseCall)

	staff := r.Group("/staff", staffRole())
	staff.GET("/calls", callCtrl.GetCalls)
	staff.PATCH("/calls/:call_id/resolve", callCtrl.ResolveCall)
	staff.DELETE("/calls/responded", callCtrl.ClearResponded)

	return r
}

func TestWaiterCallFlowOverHTTP(t *testing.T) {
	st := newStoreForTest(t)
	r := setupCallRouter(st)

	// Unknown call types are rejected.
	w := postJSON(t, r, http.MethodPost, "/tables/6/calls", map[string]string{"type": "serenade"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, http.MethodPost, "/tables/6/calls", map[string]string{"type": models.CallWater})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.WaiterCall `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.CallPending, created.Data.Status)

	// Staff resolves it.
	w = postJSON(t, r, http.MethodPatch, "/staff/calls/"+created.Data.ID+"/resolve", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Resolving again is a quiet success.
	w = postJSON(t, r, http.MethodPatch, "/staff/calls/"+created.Data.ID+"/resolve", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, http.MethodPatch, "/staff/calls/missing/resolve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearRespondedCallsOverHTTP(t *testing.T) {
	st := newStoreForTest(t)
	r := setupCallRouter(st)

	pending, err := st.RaiseCall("1", models.CallHelp)
	assert.NoError(t, err)
	responded, err := st.RaiseCall("2", models.CallBill)
	assert.NoError(t, err)
	assert.NoError(t, st.ResolveCall(responded.ID))

	w := postJSON(t, r, http.MethodDelete, "/staff/calls/responded", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Removed int `json:"removed"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Removed)

	calls := st.Calls()
	assert.Len(t, calls, 1)
	assert.Equal(t, pending.ID, calls[0].ID)
}
