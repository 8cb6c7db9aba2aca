package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	policy "github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type UpdateBooking struct {
	bookings domain.Repository[models.Booking]
	services billing.Catalog
	notifier Notifier
	policy   policy.Policy
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewUpdateBooking(
	bookings domain.Repository[models.Booking],
	services billing.Catalog,
	notifier Notifier,
	p policy.Policy,
	audit *audit.Dispatcher,
	now func() time.Time,
) *UpdateBooking {
	return &UpdateBooking{
		bookings: bookings,
		services: services,
		notifier: notifier,
		policy:   p,
		audit:    audit,
		now:      now,
	}
}

// Execute replaces the booking's contents, keeping its id and createdAt. A
// new date is checked against the past tolerance and re-arms the due
// notification.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id string,
	in billing.SaleInput,
) (models.Booking, error) {

	existing, ok := uc.bookings.Get(id)
	if !ok {
		return models.Booking{}, httperr.ErrNotFound
	}

	now := uc.now()
	if in.Date == nil {
		in.Date = &existing.Date
	}
	rescheduled := !in.Date.Equal(existing.Date)
	if rescheduled {
		if err := uc.policy.ValidateDate(*in.Date, now); err != nil {
			return models.Booking{}, err
		}
	}

	sale, err := billing.RebuildSale(in, existing.Items, uc.services, now, func() string {
		return repository.NewID(now)
	})
	if err != nil {
		return models.Booking{}, err
	}
	sale.ID = id

	bk := models.Booking{Sale: sale, CreatedAt: existing.CreatedAt}
	if !uc.bookings.Update(ctx, bk) {
		return models.Booking{}, httperr.ErrNotFound
	}
	if rescheduled && uc.notifier != nil {
		uc.notifier.Rearm(ctx, id)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]any{"date": bk.Date, "rescheduled": rescheduled},
	})

	return bk, nil
}
