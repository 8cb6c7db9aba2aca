package bill

import (
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/stats"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type ListBills struct {
	bills domain.Repository[models.Bill]
	loc   *time.Location
	now   func() time.Time
}

func NewListBills(
	bills domain.Repository[models.Bill],
	loc *time.Location,
	now func() time.Time,
) *ListBills {
	return &ListBills{bills: bills, loc: loc, now: now}
}

func (uc *ListBills) Execute() []models.Bill {
	return uc.bills.List()
}

// Grouped returns the bills under "Today", "Yesterday", ... headings.
func (uc *ListBills) Grouped() []stats.Group[models.Bill] {
	return stats.GroupByBucket(
		uc.bills.List(),
		func(b models.Bill) time.Time { return b.Date },
		uc.now(),
		uc.loc,
	)
}
