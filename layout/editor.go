package layout

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/storage"
	"github.com/uguryukselwork/quickserve/utils"
)

var (
	ErrNotEditMode   = errors.New("düzenleme modu kapalı")
	ErrTableNotFound = errors.New("masa bulunamadı")
	ErrGestureActive = errors.New("başka bir masa taşınıyor")
)

// Occupancy is the read-only view of live table state the editor pulls
// from the entity store. The two collections evolve independently, so a
// layout entry may have no orders and an order may reference a table with
// no layout entry.
type Occupancy interface {
	PendingCallsForTable(tableID string) []models.WaiterCall
	ActiveOrdersForTable(tableID string) []models.Order
	OpenBillForTable(tableID string) int
}

const (
	gestureDrag = iota
	gestureResize
)

// gesture captures the pointer origin and the table's geometry at
// pointer-down. Only one gesture may be active at a time.
type gesture struct {
	kind     int
	tableID  string
	startX   float64
	startY   float64
	initialX float64 // position for drags, width for resizes
	initialY float64 // position for drags, height for resizes
}

// Editor owns the floor-plan layout collection and its two interaction
// modes: view (read-only, live occupancy badges) and edit (geometry and
// structure mutations). Leaving edit mode happens only through Save, which
// persists the whole collection atomically.
type Editor struct {
	mu        sync.Mutex
	tables    []models.TableLayout
	editMode  bool
	selected  string
	active    *gesture
	gateway   *storage.Gateway
	occupancy Occupancy
}

func NewEditor(gw *storage.Gateway, occ Occupancy) *Editor {
	return &Editor{
		gateway:   gw,
		occupancy: occ,
	}
}

// Load restores the persisted layout or seeds the default 12-table grid.
func (e *Editor) Load() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gateway.Load(storage.KeyTableLayouts, &e.tables) && len(e.tables) > 0 {
		return
	}
	e.tables = defaultGrid()
	e.gateway.Save(storage.KeyTableLayouts, e.tables)
}

func defaultGrid() []models.TableLayout {
	tables := make([]models.TableLayout, 0, 12)
	for i := 0; i < 12; i++ {
		tables = append(tables, models.TableLayout{
			ID: strconv.Itoa(i + 1),
			X:  float64(i%4)*25 + 5,
			Y:  float64(i/4)*20 + 5,
			W:  80,
			H:  80,
		})
	}
	return tables
}

func (e *Editor) Tables() []models.TableLayout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.TableLayout(nil), e.tables...)
}

func (e *Editor) InEditMode() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editMode
}

// EnterEditMode switches to edit mode. Explicit staff action.
func (e *Editor) EnterEditMode() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editMode = true
}

// Save persists the full collection and returns to view mode. This is the
// only way out of edit mode.
func (e *Editor) Save() []models.TableLayout {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.active = nil
	e.editMode = false
	e.gateway.Save(storage.KeyTableLayouts, e.tables)
	utils.InfoLogger.Printf("Table layout saved (%d tables)", len(e.tables))
	return append([]models.TableLayout(nil), e.tables...)
}

/*
========================================
 STRUCTURE
========================================
*/

// AddTable appends a new table with the next unused numeric identifier
// (max existing numeric id + 1, or 1 when none exist) at a default spot.
func (e *Editor) AddTable() (models.TableLayout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.editMode {
		return models.TableLayout{}, ErrNotEditMode
	}

	maxID := 0
	for _, t := range e.tables {
		if n, err := strconv.Atoi(t.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	next := strconv.Itoa(maxID + 1)
	table := models.TableLayout{
		ID:   next,
		Name: fmt.Sprintf("Masa %s", next),
		X:    10,
		Y:    10,
		W:    80,
		H:    80,
	}
	e.tables = append(e.tables, table)
	return table, nil
}

// RemoveTable deletes the entry and drops the selection if it pointed at
// the removed table.
func (e *Editor) RemoveTable(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.editMode {
		return ErrNotEditMode
	}
	for i := range e.tables {
		if e.tables[i].ID == id {
			e.tables = append(e.tables[:i], e.tables[i+1:]...)
			if e.selected == id {
				e.selected = ""
			}
			return nil
		}
	}
	return ErrTableNotFound
}

// RenameTable updates the display name. Edit mode only.
func (e *Editor) RenameTable(id, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.editMode {
		return ErrNotEditMode
	}
	for i := range e.tables {
		if e.tables[i].ID == id {
			e.tables[i].Name = name
			return nil
		}
	}
	return ErrTableNotFound
}

// Select toggles the table selection used by the detail panel.
func (e *Editor) Select(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected == id {
		e.selected = ""
	} else {
		e.selected = id
	}
}

func (e *Editor) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

/*
========================================
 GESTURES
========================================
*/

// BeginDrag starts a move gesture, capturing the pointer origin and the
// table's current position. Rejected outside edit mode or while another
// gesture is active.
func (e *Editor) BeginDrag(id string, pointerX, pointerY float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.editMode {
		return ErrNotEditMode
	}
	if e.active != nil {
		return ErrGestureActive
	}
	for _, t := range e.tables {
		if t.ID == id {
			e.active = &gesture{
				kind:     gestureDrag,
				tableID:  id,
				startX:   pointerX,
				startY:   pointerY,
				initialX: t.X,
				initialY: t.Y,
			}
			return nil
		}
	}
	return ErrTableNotFound
}

// DragTo moves the dragged table. The pointer delta is converted into the
// position's percentage space using the container size and the result is
// clamped to [0, 95] on both axes, so any overshoot stays legal. A no-op
// without an active drag.
func (e *Editor) DragTo(pointerX, pointerY, containerW, containerH float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil || e.active.kind != gestureDrag {
		return
	}
	if containerW <= 0 || containerH <= 0 {
		return
	}

	dx := (pointerX - e.active.startX) / containerW * 100
	dy := (pointerY - e.active.startY) / containerH * 100
	for i := range e.tables {
		if e.tables[i].ID == e.active.tableID {
			e.tables[i].X = models.ClampPosition(e.active.initialX + dx)
			e.tables[i].Y = models.ClampPosition(e.active.initialY + dy)
			return
		}
	}
}

// BeginResize starts a resize gesture, capturing the table's current size.
func (e *Editor) BeginResize(id string, pointerX, pointerY float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.editMode {
		return ErrNotEditMode
	}
	if e.active != nil {
		return ErrGestureActive
	}
	for _, t := range e.tables {
		if t.ID == id {
			e.active = &gesture{
				kind:     gestureResize,
				tableID:  id,
				startX:   pointerX,
				startY:   pointerY,
				initialX: t.W,
				initialY: t.H,
			}
			return nil
		}
	}
	return ErrTableNotFound
}

// ResizeTo resizes the active table. Deltas apply in absolute units and
// each axis is floored at the minimum size independently.
func (e *Editor) ResizeTo(pointerX, pointerY float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil || e.active.kind != gestureResize {
		return
	}

	dw := pointerX - e.active.startX
	dh := pointerY - e.active.startY
	for i := range e.tables {
		if e.tables[i].ID == e.active.tableID {
			e.tables[i].W = models.ClampSize(e.active.initialX + dw)
			e.tables[i].H = models.ClampSize(e.active.initialY + dh)
			return
		}
	}
}

// EndGesture releases the active gesture. Clamping during the gesture
// already guarantees a legal drop, so no further validation happens here.
func (e *Editor) EndGesture() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = nil
}

/*
========================================
 OCCUPANCY (view-mode read path)
========================================
*/

// TableView is the annotated view-mode snapshot of one table.
type TableView struct {
	Layout  *models.TableLayout `json:"layout,omitempty"`
	Label   string              `json:"label"`
	Calls   []models.WaiterCall `json:"calls"`
	Orders  []models.Order      `json:"orders"`
	Bill    int                 `json:"bill"`
	BillTRY string              `json:"bill_formatted"`
}

// View annotates a table id with its pending calls, active orders and
// running bill. A missing layout entry still renders, with a fallback
// label.
func (e *Editor) View(tableID string) TableView {
	e.mu.Lock()
	var layout *models.TableLayout
	for i := range e.tables {
		if e.tables[i].ID == tableID {
			l := e.tables[i]
			layout = &l
			break
		}
	}
	e.mu.Unlock()

	label := "T" + tableID
	if layout != nil && layout.Name != "" {
		label = layout.Name
	}

	bill := e.occupancy.OpenBillForTable(tableID)
	return TableView{
		Layout:  layout,
		Label:   label,
		Calls:   e.occupancy.PendingCallsForTable(tableID),
		Orders:  e.occupancy.ActiveOrdersForTable(tableID),
		Bill:    bill,
		BillTRY: utils.FormatCurrencyTRY(bill),
	}
}
