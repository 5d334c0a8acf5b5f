package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/mely/internal/models"
)

// ComputeLineTotal returns price × quantity without rounding.
func ComputeLineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// ValidateQuantity checks 1 <= requested <= stock.
func ValidateQuantity(requested, stock int) error {
	if requested < 1 || requested > stock {
		return ErrInvalidQuantity
	}
	return nil
}

// AdjustQuantity applies delta to current when the result stays within
// [1, stock]. Otherwise current is returned unchanged.
func AdjustQuantity(current, delta, stock int) int {
	next := current + delta
	if ValidateQuantity(next, stock) != nil {
		return current
	}
	return next
}

// FilterByName keeps products whose name contains query, ignoring case.
// An empty query keeps everything.
func FilterByName(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}

	needle := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
