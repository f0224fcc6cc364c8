package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uguryukselwork/quickserve/controllers"
	"github.com/uguryukselwork/quickserve/hub"
	"github.com/uguryukselwork/quickserve/layout"
	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/storage"
	"github.com/uguryukselwork/quickserve/store"
)

func setupLayoutRouter(t *testing.T) (*gin.Engine, *layout.Editor) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	gw := storage.NewGateway(db)
	assert.NoError(t, gw.Migrate())

	st := store.New(gw)
	st.Load(store.SeedMenu())

	editor := layout.NewEditor(gw, st)
	editor.Load()

	gin.SetMode(gin.TestMode)
	r := gin.Default()
	layoutCtrl := controllers.NewLayoutController(editor, hub.New())

	staff := r.Group("/staff", staffRole())
	staff.GET("/layout", layoutCtrl.GetLayout)
	staff.GET("/layout/tables/:table_id", layoutCtrl.GetTableView)
	staff.POST("/layout/edit", layoutCtrl.EnterEditMode)
	staff.POST("/layout/save", layoutCtrl.SaveLayout)
	staff.POST("/layout/tables", layoutCtrl.AddTable)
	staff.DELETE("/layout/tables/:table_id", layoutCtrl.RemoveTable)
	staff.PATCH("/layout/tables/:table_id/name", layoutCtrl.RenameTable)
	staff.POST("/layout/tables/:table_id/drag", layoutCtrl.BeginDrag)
	staff.POST("/layout/pointer", layoutCtrl.PointerMove)
	staff.POST("/layout/release", layoutCtrl.ReleaseGesture)

	return r, editor
}

func TestLayoutEditFlowOverHTTP(t *testing.T) {
	r, editor := setupLayoutRouter(t)

	// Structure ops before entering edit mode conflict.
	w := postJSON(t, r, http.MethodPost, "/staff/layout/tables", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(t, r, http.MethodPost, "/staff/layout/edit", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, http.MethodPost, "/staff/layout/tables", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.TableLayout `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "13", created.Data.ID)

	w = postJSON(t, r, http.MethodPatch, "/staff/layout/tables/13/name", map[string]string{"name": "Teras"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Save leaves edit mode.
	w = postJSON(t, r, http.MethodPost, "/staff/layout/save", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, editor.InEditMode())
}

func TestLayoutDragOverHTTP(t *testing.T) {
	r, editor := setupLayoutRouter(t)

	postJSON(t, r, http.MethodPost, "/staff/layout/edit", nil)

	w := postJSON(t, r, http.MethodPost, "/staff/layout/tables/1/drag",
		map[string]float64{"pointer_x": 100, "pointer_y": 100})
	assert.Equal(t, http.StatusOK, w.Code)

	// A second gesture while one is active conflicts.
	w = postJSON(t, r, http.MethodPost, "/staff/layout/tables/2/drag",
		map[string]float64{"pointer_x": 0, "pointer_y": 0})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Overshoot clamps to the legal range.
	w = postJSON(t, r, http.MethodPost, "/staff/layout/pointer", map[string]float64{
		"pointer_x": 99999, "pointer_y": -99999, "container_w": 1000, "container_h": 1000,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, http.MethodPost, "/staff/layout/release", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, table := range editor.Tables() {
		if table.ID == "1" {
			assert.Equal(t, float64(models.LayoutPosMax), table.X)
			assert.Equal(t, float64(models.LayoutPosMin), table.Y)
		}
	}
}

func TestTableViewOverHTTP(t *testing.T) {
	r, _ := setupLayoutRouter(t)

	w := postJSON(t, r, http.MethodGet, "/staff/layout/tables/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data layout.TableView `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Data.Layout)
	assert.Equal(t, 0, resp.Data.Bill)
}
