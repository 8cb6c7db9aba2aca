package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/domain/billing"
	"github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

var (
	ErrQueueEmpty    = httperr.ErrBusiness("due_queue_empty")
	ErrHeadChanged   = httperr.ErrBusiness("due_head_changed")
	ErrInvalidSnooze = httperr.ErrBusiness("invalid_snooze")
)

// MaxSnoozeMinutes caps a snooze at one week.
const MaxSnoozeMinutes = 7 * 24 * 60

type Options struct {
	Now    func() time.Time
	Logger *zap.Logger
	Audit  *audit.Dispatcher
}

// Engine surfaces bookings whose time has come and applies the staff's
// decision on each one. The due queue lives in memory only; the set of
// already surfaced ids is persisted through the Ledger.
type Engine struct {
	mu       sync.Mutex
	bookings domain.Repository[models.Booking]
	bills    domain.Repository[models.Bill]
	ledger   *Ledger
	policy   booking.Policy
	now      func() time.Time
	log      *zap.Logger
	audit    *audit.Dispatcher

	queue []models.Booking
	// snooze is the duration picked for the current head, 0 when unset.
	snooze time.Duration
}

func NewEngine(
	bookings domain.Repository[models.Booking],
	bills domain.Repository[models.Bill],
	ledger *Ledger,
	policy booking.Policy,
	opts Options,
) *Engine {

	e := &Engine{
		bookings: bookings,
		bills:    bills,
		ledger:   ledger,
		policy:   policy,
		now:      opts.Now,
		log:      opts.Logger,
		audit:    opts.Audit,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	return e
}

// ===============================
// Poll
// ===============================

// Poll runs one pass over the bookings and returns the ones it surfaced.
func (e *Engine) Poll(ctx context.Context) []models.Booking {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	list := e.bookings.List()

	current := make(map[string]models.Booking, len(list))
	for _, b := range list {
		current[b.ID] = b
	}

	// Queued entries follow edits and disappear with their booking.
	queue := e.queue[:0:0]
	for _, q := range e.queue {
		if b, ok := current[q.ID]; ok {
			queue = append(queue, b)
		}
	}
	if len(queue) == 0 || len(e.queue) == 0 || queue[0].ID != e.queue[0].ID {
		e.snooze = 0
	}
	e.queue = queue

	var surfaced []models.Booking
	for _, b := range list {
		if !e.policy.ShouldSurface(b.Date, now) || e.ledger.Has(b.ID) {
			continue
		}
		if !e.queued(b.ID) {
			e.queue = append(e.queue, b)
		}
		e.ledger.Add(ctx, b.ID)
		surfaced = append(surfaced, b)
	}

	if n := e.ledger.Retain(ctx, func(id string) bool {
		_, ok := current[id]
		return ok
	}); n > 0 {
		e.log.Debug("pruned notified ids", zap.Int("count", n))
	}

	if len(surfaced) > 0 {
		e.log.Info("bookings due",
			zap.Int("surfaced", len(surfaced)),
			zap.Int("queued", len(e.queue)),
		)
	}
	return surfaced
}

// ===============================
// Queue inspection
// ===============================

func (e *Engine) Head() (models.Booking, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.queue) == 0 {
		return models.Booking{}, false
	}
	return e.queue[0], true
}

func (e *Engine) Queue() []models.Booking {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Booking(nil), e.queue...)
}

// SelectedSnooze is the duration Snooze(0) would use right now.
func (e *Engine) SelectedSnooze() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snoozeFor(0)
}

// SelectSnooze records the snooze duration chosen for the current head.
// The choice is cleared whenever the head is popped.
func (e *Engine) SelectSnooze(minutes int) error {
	if minutes <= 0 || minutes > MaxSnoozeMinutes {
		return ErrInvalidSnooze
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.queue) == 0 {
		return ErrQueueEmpty
	}
	e.snooze = time.Duration(minutes) * time.Minute
	return nil
}

// ===============================
// Head actions
// ===============================

// Confirm turns the head booking into a new bill dated now and deletes the
// booking.
func (e *Engine) Confirm(ctx context.Context, headID string) (models.Bill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	head, err := e.head(headID)
	if err != nil {
		return models.Bill{}, err
	}

	bill := head.ToBill(e.now())
	billing.Recalculate(&bill.Sale)
	bill = e.bills.Add(ctx, bill)

	e.bookings.Delete(ctx, head.ID)
	e.ledger.Remove(ctx, head.ID)
	e.pop()

	e.audit.Dispatch(audit.Event{
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: head.ID,
		Metadata: map[string]string{"bill_id": bill.ID},
	})
	return bill, nil
}

// Keep dismisses the head. The booking stays notified and will not be
// surfaced again unless it is rescheduled.
func (e *Engine) Keep(_ context.Context, headID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.head(headID); err != nil {
		return err
	}
	e.pop()
	return nil
}

// Snooze moves the head booking to now+minutes and re-arms it. minutes == 0
// uses the selected duration or the policy default.
func (e *Engine) Snooze(ctx context.Context, headID string, minutes int) (models.Booking, error) {
	if minutes < 0 || minutes > MaxSnoozeMinutes {
		return models.Booking{}, ErrInvalidSnooze
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	head, err := e.head(headID)
	if err != nil {
		return models.Booking{}, err
	}

	head.Date = e.now().Add(e.snoozeFor(minutes))
	e.bookings.Update(ctx, head)
	e.ledger.Remove(ctx, head.ID)
	e.pop()

	e.audit.Dispatch(audit.Event{
		Action:   "booking_snoozed",
		Entity:   "booking",
		EntityID: head.ID,
		Metadata: map[string]any{"date": head.Date},
	})
	return head, nil
}

func (e *Engine) Delete(ctx context.Context, headID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	head, err := e.head(headID)
	if err != nil {
		return err
	}

	e.bookings.Delete(ctx, head.ID)
	e.ledger.Remove(ctx, head.ID)
	e.pop()

	e.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: head.ID,
	})
	return nil
}

// ===============================
// Hooks for the booking editor and backup import
// ===============================

// Rearm forgets that id was surfaced and drops it from the queue, so a
// rescheduled booking can become due again.
func (e *Engine) Rearm(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ledger.Remove(ctx, id)
	e.dequeue(id)
}

// Forget is Rearm for a booking that no longer exists.
func (e *Engine) Forget(ctx context.Context, id string) {
	e.Rearm(ctx, id)
}

// Reset reloads the ledger from the store, clears the queue and polls.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	e.ledger.Load(ctx)
	e.queue = nil
	e.snooze = 0
	e.mu.Unlock()

	e.Poll(ctx)
}

// NotifiedIDs returns the ledger contents.
func (e *Engine) NotifiedIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.IDs()
}

// ===============================
// internals (e.mu held)
// ===============================

func (e *Engine) head(expectedID string) (models.Booking, error) {
	if len(e.queue) == 0 {
		return models.Booking{}, ErrQueueEmpty
	}
	head := e.queue[0]
	if expectedID != "" && head.ID != expectedID {
		return models.Booking{}, ErrHeadChanged
	}

	fresh, ok := e.bookings.Get(head.ID)
	if !ok {
		e.pop()
		return models.Booking{}, ErrHeadChanged
	}
	e.queue[0] = fresh
	return fresh, nil
}

func (e *Engine) pop() {
	e.queue = e.queue[1:]
	e.snooze = 0
}

func (e *Engine) dequeue(id string) {
	for i, q := range e.queue {
		if q.ID != id {
			continue
		}
		e.queue = append(e.queue[:i:i], e.queue[i+1:]...)
		if i == 0 {
			e.snooze = 0
		}
		return
	}
}

func (e *Engine) queued(id string) bool {
	for _, q := range e.queue {
		if q.ID == id {
			return true
		}
	}
	return false
}

func (e *Engine) snoozeFor(minutes int) time.Duration {
	switch {
	case minutes > 0:
		return time.Duration(minutes) * time.Minute
	case e.snooze > 0:
		return e.snooze
	default:
		return e.policy.DefaultSnooze
	}
}
