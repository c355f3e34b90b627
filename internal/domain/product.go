package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	Name  string
	Price decimal.Decimal
}

func NewProduct(name string, price decimal.Decimal) Product {
	return Product{
		Name:  name,
		Price: price,
	}
}

// ParseProduct builds a Product from a textual price such as "1299.00".
func ParseProduct(name, price string) (Product, error) {
	amount, err := ParsePrice(price)
	if err != nil {
		return Product{}, err
	}

	return NewProduct(name, amount), nil
}

func ParsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal literal %q: empty", s)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal literal %q: %w", s, err)
	}

	return amount, nil
}
