package audit

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcherDrainsOnClose(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	d := NewDispatcher(New(nil, log), log)
	d.Dispatch(Event{Action: "bill_created", Entity: "bill", EntityID: "1-abc"})
	d.Dispatch(Event{Action: "bill_deleted", Entity: "bill", EntityID: "1-abc"})
	d.Close()

	got := logs.FilterMessage("audit").All()
	if len(got) != 2 {
		t.Fatalf("logged %d audit entries, want 2", len(got))
	}
	if got[0].ContextMap()["action"] != "bill_created" {
		t.Errorf("first entry = %v", got[0].ContextMap())
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "noop"})
	d.Close()
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	d := NewDispatcher(New(nil, log), log)
	d.Close()
	d.Dispatch(Event{Action: "bill_created", Entity: "bill", EntityID: "late"})
	d.Close()

	if got := logs.FilterMessage("audit").Len(); got != 0 {
		t.Errorf("logged %d audit entries after close, want 0", got)
	}
	if got := logs.FilterMessage("audit dispatcher closed, dropping event").Len(); got != 1 {
		t.Errorf("dropped-event warnings = %d, want 1", got)
	}
}
