package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	policy "github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/infra/repository"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/store"
)

type recorder struct {
	rearmed   []string
	forgotten []string
}

func (r *recorder) Rearm(_ context.Context, id string)  { r.rearmed = append(r.rearmed, id) }
func (r *recorder) Forget(_ context.Context, id string) { r.forgotten = append(r.forgotten, id) }

func setup(t *testing.T) (*repository.Collection[models.Booking], *repository.Collection[models.PredefinedService], func() time.Time) {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	services := repository.NewCollection[models.PredefinedService](ctx, s, store.KeyServices, repository.Options{})
	services.Restore(ctx, []models.PredefinedService{{ID: "gel", Name: "Gel", Price: 150000, PriceType: models.PriceFixed}})

	bookings := repository.NewCollection[models.Booking](ctx, s, store.KeyBookings, repository.Options{Prepend: true})
	return bookings, services, func() time.Time { return now }
}

func at(t time.Time) *time.Time { return &t }

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	bookings, services, now := setup(t)
	uc := NewCreateBooking(bookings, services, policy.DefaultPolicy(), nil, now)

	in := billing.SaleInput{
		CustomerName: "Anna",
		Items:        []billing.ItemInput{{ServiceID: "gel", Quantity: 1}},
	}

	if _, err := uc.Execute(ctx, in); !errors.Is(err, ErrDateRequired) {
		t.Errorf("no date: %v, want %v", err, ErrDateRequired)
	}

	in.Date = at(now().Add(-2 * time.Minute))
	if _, err := uc.Execute(ctx, in); !errors.Is(err, policy.ErrBookingInPast) {
		t.Errorf("past date: %v, want %v", err, policy.ErrBookingInPast)
	}

	in.Date = at(now().Add(-30 * time.Second))
	bk, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("within tolerance: %v", err)
	}
	if !bk.CreatedAt.Equal(now()) || bk.Total != 150000 {
		t.Errorf("booking = %+v", bk)
	}
}

func TestUpdateBookingRearmsOnReschedule(t *testing.T) {
	ctx := context.Background()
	bookings, services, now := setup(t)
	rec := &recorder{}

	created, err := NewCreateBooking(bookings, services, policy.DefaultPolicy(), nil, now).Execute(ctx, billing.SaleInput{
		CustomerName: "Anna",
		Date:         at(now().Add(time.Hour)),
		Items:        []billing.ItemInput{{ServiceID: "gel", Quantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	uc := NewUpdateBooking(bookings, services, rec, policy.DefaultPolicy(), nil, now)

	// Same date, new note: no re-arm.
	if _, err := uc.Execute(ctx, created.ID, billing.SaleInput{
		CustomerName: "Anna",
		Note:         "french tips",
		Items:        []billing.ItemInput{{ServiceID: "gel", Quantity: 1}},
	}); err != nil {
		t.Fatal(err)
	}
	if len(rec.rearmed) != 0 {
		t.Errorf("re-armed without a date change: %v", rec.rearmed)
	}

	updated, err := uc.Execute(ctx, created.ID, billing.SaleInput{
		CustomerName: "Anna",
		Date:         at(now().Add(2 * time.Hour)),
		Items:        []billing.ItemInput{{ServiceID: "gel", Quantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.rearmed) != 1 || rec.rearmed[0] != created.ID {
		t.Errorf("rearmed = %v", rec.rearmed)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt changed on update")
	}

	if _, err := uc.Execute(ctx, "missing", billing.SaleInput{}); !errors.Is(err, httperr.ErrNotFound) {
		t.Errorf("missing id: %v", err)
	}
}

func TestDeleteBookingForgets(t *testing.T) {
	ctx := context.Background()
	bookings, _, _ := setup(t)
	rec := &recorder{}
	bk := bookings.Add(ctx, models.Booking{Sale: models.Sale{CustomerName: "Anna"}})

	uc := NewDeleteBooking(bookings, rec, nil)
	if err := uc.Execute(ctx, bk.ID); err != nil {
		t.Fatal(err)
	}
	if len(rec.forgotten) != 1 {
		t.Errorf("forgotten = %v", rec.forgotten)
	}
	if err := uc.Execute(ctx, bk.ID); !errors.Is(err, httperr.ErrNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestListBookingsSoonestFirst(t *testing.T) {
	ctx := context.Background()
	bookings, _, now := setup(t)

	bookings.Add(ctx, models.Booking{Sale: models.Sale{CustomerName: "late", Date: now().Add(3 * time.Hour)}})
	bookings.Add(ctx, models.Booking{Sale: models.Sale{CustomerName: "soon", Date: now().Add(time.Hour)}})

	got := NewListBookings(bookings).Execute()
	if len(got) != 2 || got[0].CustomerName != "soon" || got[1].CustomerName != "late" {
		t.Errorf("Execute() = %+v", got)
	}
}
