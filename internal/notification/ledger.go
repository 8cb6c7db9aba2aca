package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-pos/internal/store"
)

// Ledger is the persisted set of booking ids that were already surfaced.
// It is stored under its own key, apart from the bookings. Callers hold the
// engine lock.
type Ledger struct {
	store store.Store
	log   *zap.Logger
	ids   []string
	set   map[string]struct{}
}

func NewLedger(ctx context.Context, s store.Store, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Ledger{store: s, log: log}
	l.Load(ctx)
	return l
}

func (l *Ledger) Load(ctx context.Context) {
	var ids []string
	if _, err := store.GetJSON(ctx, l.store, store.KeyNotifiedIDs, &ids); err != nil {
		l.log.Warn("notified ids read failed, starting empty", zap.Error(err))
		ids = nil
	}

	l.ids = nil
	l.set = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := l.set[id]; dup {
			continue
		}
		l.set[id] = struct{}{}
		l.ids = append(l.ids, id)
	}
}

func (l *Ledger) Has(id string) bool {
	_, ok := l.set[id]
	return ok
}

func (l *Ledger) IDs() []string {
	return append([]string(nil), l.ids...)
}

func (l *Ledger) Add(ctx context.Context, id string) {
	if l.Has(id) {
		return
	}
	l.set[id] = struct{}{}
	l.ids = append(l.ids, id)
	l.persist(ctx)
}

func (l *Ledger) Remove(ctx context.Context, id string) {
	if !l.Has(id) {
		return
	}
	delete(l.set, id)
	for i, v := range l.ids {
		if v == id {
			l.ids = append(l.ids[:i:i], l.ids[i+1:]...)
			break
		}
	}
	l.persist(ctx)
}

// Retain drops every id for which keep is false.
func (l *Ledger) Retain(ctx context.Context, keep func(id string) bool) int {
	kept := l.ids[:0:0]
	dropped := 0
	for _, id := range l.ids {
		if keep(id) {
			kept = append(kept, id)
			continue
		}
		delete(l.set, id)
		dropped++
	}
	if dropped > 0 {
		l.ids = kept
		l.persist(ctx)
	}
	return dropped
}

func (l *Ledger) persist(ctx context.Context) {
	ids := l.ids
	if ids == nil {
		ids = []string{}
	}
	if err := store.SetJSON(context.WithoutCancel(ctx), l.store, store.KeyNotifiedIDs, ids); err != nil {
		l.log.Error("notified ids write failed", zap.Error(err))
	}
}
