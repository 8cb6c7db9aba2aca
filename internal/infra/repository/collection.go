package repository

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-pos/internal/domain"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/store"
)

// Record is anything a Collection can hold.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
}

type Options struct {
	// Prepend puts new records first (newest-first lists).
	Prepend bool
	Logger  *zap.Logger
	Now     func() time.Time
}

// Collection is an ordered array of records persisted as one JSON document.
// Every mutation rewrites the whole array. Store failures are logged and
// swallowed; the in-memory array stays authoritative.
type Collection[T Record[T]] struct {
	mu      sync.RWMutex
	store   store.Store
	key     string
	prepend bool
	log     *zap.Logger
	now     func() time.Time
	items   []T
}

func NewCollection[T Record[T]](
	ctx context.Context,
	s store.Store,
	key string,
	opts Options,
) *Collection[T] {

	c := &Collection[T]{
		store:   s,
		key:     key,
		prepend: opts.Prepend,
		log:     opts.Logger,
		now:     opts.Now,
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.now == nil {
		c.now = time.Now
	}

	c.Reload(ctx)
	return c
}

// Reload replaces the in-memory array with what the store holds. A read
// failure leaves the collection empty.
func (c *Collection[T]) Reload(ctx context.Context) {
	var items []T
	if _, err := store.GetJSON(ctx, c.store, c.key, &items); err != nil {
		c.log.Warn("collection read failed, starting empty",
			zap.String("key", c.key),
			zap.Error(err),
		)
		items = nil
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// List returns a copy of the records in display order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Add assigns a fresh id to rec and stores it.
func (c *Collection[T]) Add(ctx context.Context, rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := NewID(c.now())
	for c.indexOf(id) >= 0 {
		id = NewID(c.now())
	}
	rec = rec.WithID(id)

	if c.prepend {
		c.items = append([]T{rec}, c.items...)
	} else {
		c.items = append(c.items, rec)
	}

	c.persist(ctx)
	return rec
}

// Update replaces the record with the same id. It reports false and
// changes nothing when no such record exists.
func (c *Collection[T]) Update(ctx context.Context, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(rec.GetID())
	if i < 0 {
		return false
	}
	c.items[i] = rec

	c.persist(ctx)
	return true
}

func (c *Collection[T]) Delete(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)

	c.persist(ctx)
	return true
}

// Restore replaces the whole collection.
func (c *Collection[T]) Restore(ctx context.Context, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T(nil), items...)
	c.persist(ctx)
}

// UpdateWhere applies fn to every record and persists once if any record
// changed. It returns the number of changed records.
func (c *Collection[T]) UpdateWhere(ctx context.Context, fn func(T) (T, bool)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for i, rec := range c.items {
		if next, ok := fn(rec); ok {
			c.items[i] = next
			changed++
		}
	}
	if changed > 0 {
		c.persist(ctx)
	}
	return changed
}

func (c *Collection[T]) indexOf(id string) int {
	for i, rec := range c.items {
		if rec.GetID() == id {
			return i
		}
	}
	return -1
}

// persist must be called with c.mu held.
func (c *Collection[T]) persist(ctx context.Context) {
	items := c.items
	if items == nil {
		items = []T{}
	}
	if err := store.SetJSON(context.WithoutCancel(ctx), c.store, c.key, items); err != nil {
		c.log.Error("collection write failed",
			zap.String("key", c.key),
			zap.Int("records", len(items)),
			zap.Error(err),
		)
	}
}

var (
	_ domain.Repository[models.Bill]              = (*Collection[models.Bill])(nil)
	_ domain.Repository[models.Booking]           = (*Collection[models.Booking])(nil)
	_ domain.Repository[models.PredefinedService] = (*Collection[models.PredefinedService])(nil)
	_ domain.Repository[models.ServiceCategory]   = (*Collection[models.ServiceCategory])(nil)
	_ domain.Repository[models.Customer]          = (*Collection[models.Customer])(nil)
)
