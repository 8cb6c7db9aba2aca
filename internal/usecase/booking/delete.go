package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type DeleteBooking struct {
	bookings domain.Repository[models.Booking]
	notifier Notifier
	audit    *audit.Dispatcher
}

func NewDeleteBooking(
	bookings domain.Repository[models.Booking],
	notifier Notifier,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{bookings: bookings, notifier: notifier, audit: audit}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id string) error {
	if !uc.bookings.Delete(ctx, id) {
		return httperr.ErrNotFound
	}
	if uc.notifier != nil {
		uc.notifier.Forget(ctx, id)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
	})
	return nil
}
