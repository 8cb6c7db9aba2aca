package billing

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// ===============================
// Totals
// ===============================

func Subtotal(items []models.ServiceItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}

// DiscountAmount is the discount in currency units. Percent discounts round
// to the nearest unit, halves up.
func DiscountAmount(subtotal int64, value float64, typ models.DiscountType) int64 {
	if value <= 0 {
		return 0
	}

	v := decimal.NewFromFloat(value)
	if typ == models.DiscountPercent {
		v = decimal.NewFromInt(subtotal).Mul(v).Div(decimal.NewFromInt(100))
	}
	return v.Round(0).IntPart()
}

// Total is max(0, subtotal - discount).
func Total(items []models.ServiceItem, value float64, typ models.DiscountType) int64 {
	subtotal := Subtotal(items)
	total := subtotal - DiscountAmount(subtotal, value, typ)
	if total < 0 {
		return 0
	}
	return total
}

// Recalculate overwrites s.Total from its items and discount.
func Recalculate(s *models.Sale) {
	if s.DiscountType == "" {
		s.DiscountType = models.DiscountPercent
	}
	s.Total = Total(s.Items, s.DiscountValue, s.DiscountType)
}
