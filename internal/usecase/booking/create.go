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

// Notifier is the part of the due engine that must hear about edits.
type Notifier interface {
	Rearm(ctx context.Context, id string)
	Forget(ctx context.Context, id string)
}

var ErrDateRequired = httperr.ErrBusiness("booking_date_required")

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	bookings domain.Repository[models.Booking]
	services billing.Catalog
	policy   policy.Policy
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewCreateBooking(
	bookings domain.Repository[models.Booking],
	services billing.Catalog,
	p policy.Policy,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateBooking {
	return &CreateBooking{
		bookings: bookings,
		services: services,
		policy:   p,
		audit:    audit,
		now:      now,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in billing.SaleInput,
) (models.Booking, error) {

	if in.Date == nil {
		return models.Booking{}, ErrDateRequired
	}

	now := uc.now()
	if err := uc.policy.ValidateDate(*in.Date, now); err != nil {
		return models.Booking{}, err
	}

	sale, err := billing.BuildSale(in, uc.services, now, func() string {
		return repository.NewID(now)
	})
	if err != nil {
		return models.Booking{}, err
	}

	bk := uc.bookings.Add(ctx, models.Booking{Sale: sale, CreatedAt: now})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: bk.ID,
		Metadata: map[string]any{"date": bk.Date},
	})

	return bk, nil
}
