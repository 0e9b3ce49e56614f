package domain

// Product represents a stock item in the restaurant catalog.
// The same records back the pre-order menu offered during reservation intake.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// InStock returns true if at least one unit is available
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// DefaultMenu is the catalog seeded on first start when no products
// have been persisted yet.
func DefaultMenu() []Product {
	return []Product{
		{ID: "1", Name: "Francesinha", Quantity: 20, Price: 15},
		{ID: "2", Name: "Turkey", Quantity: 20, Price: 20},
		{ID: "3", Name: "Special Steak", Quantity: 20, Price: 25},
	}
}
