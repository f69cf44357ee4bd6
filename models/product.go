package models

import "github.com/shopspring/decimal"

// PriceOption is one quantity/price tier of a product. Tiers are kept
// sorted by ascending quantity.
type PriceOption struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Product is a purchasable descriptor from the static catalog.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	ImageURL     string        `json:"image_url"`
	PriceOptions []PriceOption `json:"price_options"`
	Customizable bool          `json:"customizable"`
}

// PriceFor returns the price tier applicable to an order of orderQty
// units: the tier with the largest quantity not exceeding orderQty. An
// order below the smallest tier is charged at the smallest tier.
func (p *Product) PriceFor(orderQty int) PriceOption {
	if len(p.PriceOptions) == 0 {
		return PriceOption{}
	}

	selected := p.PriceOptions[0]
	for _, option := range p.PriceOptions {
		if option.Quantity <= orderQty {
			selected = option
		}
	}
	return selected
}

// TextileOption is one garment type offered by the textile marking
// service, with its starting unit price. Final pricing is by quote.
type TextileOption struct {
	Value     string          `json:"value"`
	Label     string          `json:"label"`
	ImageURL  string          `json:"image_url"`
	FromPrice decimal.Decimal `json:"from_price"`
}
