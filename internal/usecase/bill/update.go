package bill

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type UpdateBill struct {
	bills    domain.Repository[models.Bill]
	services billing.Catalog
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewUpdateBill(
	bills domain.Repository[models.Bill],
	services billing.Catalog,
	audit *audit.Dispatcher,
	now func() time.Time,
) *UpdateBill {
	return &UpdateBill{
		bills:    bills,
		services: services,
		audit:    audit,
		now:      now,
	}
}

// Execute replaces the bill's contents. An omitted date keeps the original.
func (uc *UpdateBill) Execute(
	ctx context.Context,
	id string,
	in billing.SaleInput,
) (models.Bill, error) {

	existing, ok := uc.bills.Get(id)
	if !ok {
		return models.Bill{}, httperr.ErrNotFound
	}
	if in.Date == nil {
		in.Date = &existing.Date
	}

	now := uc.now()
	sale, err := billing.RebuildSale(in, existing.Items, uc.services, now, func() string {
		return repository.NewID(now)
	})
	if err != nil {
		return models.Bill{}, err
	}
	sale.ID = id

	bill := models.Bill{Sale: sale}
	if !uc.bills.Update(ctx, bill) {
		return models.Bill{}, httperr.ErrNotFound
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "bill_updated",
		Entity:   "bill",
		EntityID: id,
		Metadata: map[string]any{"total": bill.Total},
	})

	return bill, nil
}
