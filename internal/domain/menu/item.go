package menu

// MenuItem is a catalog entry. The catalog is read-only at runtime:
// orders carry their own copies of name and price.
type MenuItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags,omitempty"`
	PreparationTime int      `json:"preparationTime,omitempty"`
	Popular         bool     `json:"popular,omitempty"`
}
