package billing

import (
	"strings"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

var (
	ErrCustomerNameRequired = httperr.ErrBusiness("customer_name_required")
	ErrItemsRequired        = httperr.ErrBusiness("items_required")
	ErrInvalidDiscount      = httperr.ErrBusiness("invalid_discount")
)

// Validate checks a sale as submitted from the editor. It trims the
// customer name in place.
func Validate(s *models.Sale) error {
	s.CustomerName = strings.TrimSpace(s.CustomerName)
	if s.CustomerName == "" {
		return ErrCustomerNameRequired
	}
	if len(s.Items) == 0 {
		return ErrItemsRequired
	}

	switch s.DiscountType {
	case "", models.DiscountPercent, models.DiscountAmount:
	default:
		return ErrInvalidDiscount
	}
	if s.DiscountValue < 0 {
		return ErrInvalidDiscount
	}
	if s.DiscountType != models.DiscountAmount && s.DiscountValue > 100 {
		return ErrInvalidDiscount
	}
	return nil
}
