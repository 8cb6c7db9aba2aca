package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
)

// ===============================
// Due policy
// ===============================

type Policy struct {
	// PollInterval is how often due bookings are looked for.
	PollInterval time.Duration
	// CatchUpWindow bounds how far in the past a missed booking can still
	// be surfaced.
	CatchUpWindow time.Duration
	// PastTolerance is how far in the past a booking may be scheduled.
	PastTolerance time.Duration
	DefaultSnooze time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		PollInterval:  5 * time.Second,
		CatchUpWindow: 24 * time.Hour,
		PastTolerance: time.Minute,
		DefaultSnooze: 10 * time.Minute,
	}
}

var ErrBookingInPast = httperr.ErrBusiness("booking_in_past")

// ===============================
// Predicates
// ===============================

func IsDue(date, now time.Time) bool {
	return !date.After(now)
}

// IsRecent excludes bookings older than the catch-up window.
func (p Policy) IsRecent(date, now time.Time) bool {
	return date.After(now.Add(-p.CatchUpWindow))
}

func (p Policy) ShouldSurface(date, now time.Time) bool {
	return IsDue(date, now) && p.IsRecent(date, now)
}

// ValidateDate rejects dates earlier than now minus the tolerance. It only
// runs when the editor submits a booking.
func (p Policy) ValidateDate(date, now time.Time) error {
	if date.Before(now.Add(-p.PastTolerance)) {
		return ErrBookingInPast
	}
	return nil
}
