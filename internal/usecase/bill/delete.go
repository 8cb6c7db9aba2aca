package bill

import (
	"context"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type DeleteBill struct {
	bills domain.Repository[models.Bill]
	audit *audit.Dispatcher
}

func NewDeleteBill(bills domain.Repository[models.Bill], audit *audit.Dispatcher) *DeleteBill {
	return &DeleteBill{bills: bills, audit: audit}
}

func (uc *DeleteBill) Execute(ctx context.Context, id string) error {
	if !uc.bills.Delete(ctx, id) {
		return httperr.ErrNotFound
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "bill_deleted",
		Entity:   "bill",
		EntityID: id,
	})
	return nil
}

// RestoreBills replaces the whole bill list.
type RestoreBills struct {
	bills domain.Repository[models.Bill]
	audit *audit.Dispatcher
}

func NewRestoreBills(bills domain.Repository[models.Bill], audit *audit.Dispatcher) *RestoreBills {
	return &RestoreBills{bills: bills, audit: audit}
}

func (uc *RestoreBills) Execute(ctx context.Context, bills []models.Bill) {
	for i := range bills {
		billing.Recalculate(&bills[i].Sale)
	}
	uc.bills.Restore(ctx, bills)

	uc.audit.Dispatch(audit.Event{
		Action:   "bills_restored",
		Entity:   "bill",
		Metadata: map[string]int{"count": len(bills)},
	})
}
