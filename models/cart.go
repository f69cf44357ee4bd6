package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLineItem is one configured, priced product a visitor intends to
// order. Price is fixed when the line is added; changing Quantity never
// re-derives it from the tier table. SelectedQuantity is the pricing
// tier the price was computed against, Quantity is how many of this
// configured bundle to order.
type CartLineItem struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ImageURL         string          `json:"image_url"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
	Customizable     bool            `json:"customizable"`
	SelectedQuantity int             `json:"selected_quantity"`
}

// LineTotal is Price multiplied by Quantity.
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds the line items for one browser session.
type Cart struct {
	SessionID string         `json:"session_id"`
	Items     []CartLineItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Count is the sum of quantities across all lines, not the number of
// distinct lines. It feeds the navigation badge.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// TotalPrice recomputes the cart total from the current line set on
// every call. Nothing is cached, so the total can never drift from the
// lines it is derived from.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}
