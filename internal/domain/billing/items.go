package billing

import (
	"strings"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// ItemInput is one editor row. ServiceID picks a catalog entry; without it
// the row is a free-form line priced by UnitPrice.
type ItemInput struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	VariantID string `json:"variantId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

var (
	ErrInvalidQuantity  = httperr.ErrBusiness("invalid_quantity")
	ErrInvalidPrice     = httperr.ErrBusiness("invalid_price")
	ErrItemNameRequired = httperr.ErrBusiness("item_name_required")
	ErrVariantRequired  = httperr.ErrBusiness("variant_required")
	ErrVariantNotFound  = httperr.ErrBusiness("variant_not_found")
)

// PriceItem builds a ServiceItem whose price is already adjusted for
// quantity and variant. svc is nil for free-form lines and for lines whose
// service has left the catalog; those keep the submitted name and price.
func PriceItem(svc *models.PredefinedService, in ItemInput) (models.ServiceItem, error) {
	qty := in.Quantity
	if svc != nil && !svc.AllowQuantity {
		qty = 1
	}
	if qty < 1 {
		return models.ServiceItem{}, ErrInvalidQuantity
	}

	item := models.ServiceItem{
		ID:        in.ID,
		ServiceID: in.ServiceID,
		Name:      strings.TrimSpace(in.Name),
		Quantity:  qty,
	}

	if svc == nil {
		if item.Name == "" {
			return models.ServiceItem{}, ErrItemNameRequired
		}
		if in.UnitPrice < 0 {
			return models.ServiceItem{}, ErrInvalidPrice
		}
		item.Price = in.UnitPrice * int64(qty)
		return item, nil
	}

	item.ServiceID = svc.ID
	item.Name = svc.Name

	switch {
	case svc.PriceType == models.PriceVariable && len(svc.Variants) > 0:
		if in.VariantID == "" {
			return models.ServiceItem{}, ErrVariantRequired
		}
		v, ok := svc.Variant(in.VariantID)
		if !ok {
			return models.ServiceItem{}, ErrVariantNotFound
		}
		item.VariantName = v.Name
		item.Price = v.Price * int64(qty)

	case svc.PriceType == models.PriceVariable:
		if in.UnitPrice < 0 {
			return models.ServiceItem{}, ErrInvalidPrice
		}
		item.Price = in.UnitPrice * int64(qty)

	default:
		item.Price = svc.Price * int64(qty)
	}

	return item, nil
}
