package models

// Geometry bounds for the floor plan. Positions are percentages of the
// container, sizes are absolute units.
const (
	LayoutPosMin  = 0.0
	LayoutPosMax  = 95.0
	LayoutSizeMin = 40.0
)

// TableLayout places a table on the staff floor plan. The layout collection
// is owned by the layout editor and persisted independently of orders and
// calls; a table may appear here with no orders and vice versa.
type TableLayout struct {
	ID   string  `json:"id"`
	Name string  `json:"name,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// ClampPosition forces a coordinate into the visible [0, 95] range.
func ClampPosition(v float64) float64 {
	if v < LayoutPosMin {
		return LayoutPosMin
	}
	if v > LayoutPosMax {
		return LayoutPosMax
	}
	return v
}

// ClampSize floors a dimension at the minimum table size.
func ClampSize(v float64) float64 {
	if v < LayoutSizeMin {
		return LayoutSizeMin
	}
	return v
}
