package models

// Menu categories shown to customers. The catalog is seeded once and only
// the image reference is ever overwritten afterwards.
const (
	CategoryAppetizer = "Appetizer"
	CategoryMain      = "Main"
	CategoryDrink     = "Drink"
	CategoryDessert   = "Dessert"
)

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"` // rich text, **bold** / *italic* markers
	Price       int      `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags,omitempty"`
}

// CartItem is a menu item snapshot plus quantity and an optional note.
// It lives only in an in-progress cart until the order is placed.
type CartItem struct {
	MenuItem
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}
