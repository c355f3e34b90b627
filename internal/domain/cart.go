package domain

import "github.com/shopspring/decimal"

// Cart keeps products in insertion order, duplicates included.
// The zero value is an empty cart. A Cart is not safe for concurrent use.
type Cart struct {
	items []Product
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(p Product) {
	c.items = append(c.items, p)
}

func (c *Cart) ItemCount() int {
	return len(c.items)
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price)
	}

	return total
}
