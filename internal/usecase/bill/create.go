package bill

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	"github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBill struct {
	bills    domain.Repository[models.Bill]
	services billing.Catalog
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewCreateBill(
	bills domain.Repository[models.Bill],
	services billing.Catalog,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateBill {
	return &CreateBill{
		bills:    bills,
		services: services,
		audit:    audit,
		now:      now,
	}
}

func (uc *CreateBill) Execute(
	ctx context.Context,
	in billing.SaleInput,
) (models.Bill, error) {

	now := uc.now()
	sale, err := billing.BuildSale(in, uc.services, now, func() string {
		return repository.NewID(now)
	})
	if err != nil {
		return models.Bill{}, err
	}

	bill := uc.bills.Add(ctx, models.Bill{Sale: sale})

	uc.audit.Dispatch(audit.Event{
		Action:   "bill_created",
		Entity:   "bill",
		EntityID: bill.ID,
		Metadata: map[string]any{"total": bill.Total},
	})

	return bill, nil
}
