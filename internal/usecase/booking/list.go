package booking

import (
	"sort"

	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type ListBookings struct {
	bookings domain.Repository[models.Booking]
}

func NewListBookings(bookings domain.Repository[models.Booking]) *ListBookings {
	return &ListBookings{bookings: bookings}
}

// Execute returns bookings soonest first.
func (uc *ListBookings) Execute() []models.Booking {
	list := uc.bookings.List()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date.Before(list[j].Date)
	})
	return list
}
