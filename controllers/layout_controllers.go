package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/hub"
	"github.com/uguryukselwork/quickserve/layout"
	"github.com/uguryukselwork/quickserve/utils"
)

type LayoutController struct {
	Editor *layout.Editor
	Hub    *hub.Hub
}

func NewLayoutController(editor *layout.Editor, h *hub.Hub) *LayoutController {
	return &LayoutController{Editor: editor, Hub: h}
}

func (lc *LayoutController) requireStaff(c *gin.Context) bool {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return false
	}
	return true
}

func (lc *LayoutController) respondEditorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, layout.ErrTableNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, layout.ErrNotEditMode), errors.Is(err, layout.ErrGestureActive):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// GetLayout -> the current floor plan plus mode and selection
func (lc *LayoutController) GetLayout(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table layout", gin.H{
		"tables":    lc.Editor.Tables(),
		"edit_mode": lc.Editor.InEditMode(),
		"selected":  lc.Editor.Selected(),
	})
}

// GetTableView -> one table annotated with live occupancy
func (lc *LayoutController) GetTableView(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table view", lc.Editor.View(c.Param("table_id")))
}

// EnterEditMode -> switch the floor plan into edit mode
func (lc *LayoutController) EnterEditMode(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	lc.Editor.EnterEditMode()
	utils.RespondJSON(c, http.StatusOK, "Düzenleme modu açıldı", gin.H{"edit_mode": true})
}

// SaveLayout -> persist the plan, leave edit mode, push to staff clients
func (lc *LayoutController) SaveLayout(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	tables := lc.Editor.Save()
	lc.Hub.BroadcastLayout(tables)
	utils.RespondJSON(c, http.StatusOK, "Yerleşim kaydedildi", gin.H{"tables": tables})
}

// AddTable -> new table with the next numeric id
func (lc *LayoutController) AddTable(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	table, err := lc.Editor.AddTable()
	if err != nil {
		lc.respondEditorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Masa eklendi", table)
}

// RemoveTable
func (lc *LayoutController) RemoveTable(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	if err := lc.Editor.RemoveTable(c.Param("table_id")); err != nil {
		lc.respondEditorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Masa silindi", gin.H{"table_id": c.Param("table_id")})
}

// RenameTable
func (lc *LayoutController) RenameTable(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := lc.Editor.RenameTable(c.Param("table_id"), body.Name); err != nil {
		lc.respondEditorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Masa adı güncellendi", gin.H{"table_id": c.Param("table_id")})
}

// SelectTable -> toggle the detail-panel selection
func (lc *LayoutController) SelectTable(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	lc.Editor.Select(c.Param("table_id"))
	utils.RespondJSON(c, http.StatusOK, "Selection updated", gin.H{"selected": lc.Editor.Selected()})
}

type gestureStart struct {
	PointerX float64 `json:"pointer_x"`
	PointerY float64 `json:"pointer_y"`
}

// BeginDrag -> start moving a table
func (lc *LayoutController) BeginDrag(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	var body gestureStart
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := lc.Editor.BeginDrag(c.Param("table_id"), body.PointerX, body.PointerY); err != nil {
		lc.respondEditorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Drag started", nil)
}

// BeginResize -> start resizing a table
func (lc *LayoutController) BeginResize(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	var body gestureStart
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := lc.Editor.BeginResize(c.Param("table_id"), body.PointerX, body.PointerY); err != nil {
		lc.respondEditorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Resize started", nil)
}

// PointerMove -> drive the active gesture; a no-op when none is running
func (lc *LayoutController) PointerMove(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	var body struct {
		PointerX   float64 `json:"pointer_x"`
		PointerY   float64 `json:"pointer_y"`
		ContainerW float64 `json:"container_w"`
		ContainerH float64 `json:"container_h"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	lc.Editor.DragTo(body.PointerX, body.PointerY, body.ContainerW, body.ContainerH)
	lc.Editor.ResizeTo(body.PointerX, body.PointerY)
	utils.RespondJSON(c, http.StatusOK, "Pointer moved", gin.H{"tables": lc.Editor.Tables()})
}

// ReleaseGesture -> pointer up, always succeeds
func (lc *LayoutController) ReleaseGesture(c *gin.Context) {
	if !lc.requireStaff(c) {
		return
	}
	lc.Editor.EndGesture()
	utils.RespondJSON(c, http.StatusOK, "Gesture released", gin.H{"tables": lc.Editor.Tables()})
}
