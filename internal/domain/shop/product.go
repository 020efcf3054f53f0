package shop

import "github.com/shopspring/decimal"

// Product is a catalog item. Products are immutable once fetched; the catalog
// model owns them for the session.
type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Price       *decimal.Decimal `json:"price"` // nil means "not for sale"
}

// PriceOrZero returns the product price, treating a nil price as zero.
func (p Product) PriceOrZero() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}

// Publisher is the slice of the event bus the domain models need. Models
// publish change notifications and never read anything back.
type Publisher interface {
	Publish(name string, payload any)
}
