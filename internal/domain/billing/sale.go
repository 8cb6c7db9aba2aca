package billing

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// SaleInput is what the bill and booking editors submit.
type SaleInput struct {
	CustomerName  string              `json:"customerName"`
	Date          *time.Time          `json:"date"`
	Items         []ItemInput         `json:"items"`
	DiscountValue float64             `json:"discountValue"`
	DiscountType  models.DiscountType `json:"discountType"`
	Note          string              `json:"note"`
}

// Catalog resolves service ids while pricing items.
type Catalog interface {
	Get(id string) (models.PredefinedService, bool)
}

// BuildSale prices every item from the catalog, validates the result and
// computes the total. Date defaults to now. newItemID fills missing item ids.
func BuildSale(
	in SaleInput,
	catalog Catalog,
	now time.Time,
	newItemID func() string,
) (models.Sale, error) {
	return buildSale(in, nil, catalog, now, newItemID)
}

// RebuildSale is BuildSale for an edit. Rows that match a stored item and
// leave its service, variant and quantity alone keep the stored price, so
// later catalog changes do not rewrite past sales.
func RebuildSale(
	in SaleInput,
	previous []models.ServiceItem,
	catalog Catalog,
	now time.Time,
	newItemID func() string,
) (models.Sale, error) {
	return buildSale(in, previous, catalog, now, newItemID)
}

func buildSale(
	in SaleInput,
	previous []models.ServiceItem,
	catalog Catalog,
	now time.Time,
	newItemID func() string,
) (models.Sale, error) {

	sale := models.Sale{
		CustomerName:  in.CustomerName,
		Date:          now,
		DiscountValue: in.DiscountValue,
		DiscountType:  in.DiscountType,
		Note:          strings.TrimSpace(in.Note),
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}

	stored := make(map[string]models.ServiceItem, len(previous))
	for _, it := range previous {
		stored[it.ID] = it
	}

	for _, row := range in.Items {
		var svc *models.PredefinedService
		if row.ServiceID != "" && catalog != nil {
			if found, ok := catalog.Get(row.ServiceID); ok {
				svc = &found
			}
		}

		if prev, ok := stored[row.ID]; ok && row.ID != "" {
			if item, same := keepStored(prev, svc, row); same {
				sale.Items = append(sale.Items, item)
				continue
			}
		}

		item, err := PriceItem(svc, row)
		if err != nil {
			return models.Sale{}, err
		}
		if item.ID == "" {
			item.ID = newItemID()
		}
		sale.Items = append(sale.Items, item)
	}

	if err := Validate(&sale); err != nil {
		return models.Sale{}, err
	}
	Recalculate(&sale)
	return sale, nil
}

// keepStored reports whether row leaves prev's pricing inputs unchanged. A
// zero quantity or unit price and an empty variant mean "as stored".
func keepStored(prev models.ServiceItem, svc *models.PredefinedService, row ItemInput) (models.ServiceItem, bool) {
	if row.ServiceID != prev.ServiceID {
		return models.ServiceItem{}, false
	}
	if row.Quantity != 0 && row.Quantity != prev.Quantity {
		return models.ServiceItem{}, false
	}

	if row.VariantID != "" {
		if svc == nil {
			return models.ServiceItem{}, false
		}
		v, ok := svc.Variant(row.VariantID)
		if !ok || v.Name != prev.VariantName {
			return models.ServiceItem{}, false
		}
	}

	item := prev
	if row.ServiceID == "" || svc == nil || (svc.PriceType == models.PriceVariable && len(svc.Variants) == 0) {
		// Hand-priced line: an explicit unit price re-prices it.
		if row.UnitPrice != 0 && row.UnitPrice*int64(prev.Quantity) != prev.Price {
			return models.ServiceItem{}, false
		}
		if name := strings.TrimSpace(row.Name); name != "" && row.ServiceID == "" {
			item.Name = name
		}
	}
	return item, true
}
