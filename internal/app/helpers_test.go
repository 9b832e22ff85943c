package app

import (
	"log/slog"
	"testing"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/store/sqlite/sqlitetest"
	"github.com/jsamuelsen11/project-tracker/internal/app/feed"
	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// harness wires both services to an in-memory store and a live feed with one
// attached subscriber.
type harness struct {
	store    ports.Store
	bus      *feed.Bus
	sub      ports.Subscription
	projects *ProjectService
	tasks    *TaskService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := sqlitetest.New(t)
	bus := feed.New(64, nil)
	t.Cleanup(func() { _ = bus.Close() })

	sub, err := bus.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	return &harness{
		store:    store,
		bus:      bus,
		sub:      sub,
		projects: NewProjectService(store, bus, discardLogger()),
		tasks:    NewTaskService(store, bus, discardLogger()),
	}
}

// drain returns every event queued for the harness subscriber. Publish is
// synchronous, so events of a completed call are already queued.
func (h *harness) drain() []event.UpdateEvent {
	var events []event.UpdateEvent
	for {
		select {
		case ev := <-h.sub.Events():
			events = append(events, ev)
		default:
			return events
		}
	}
}

func requireEvents(t *testing.T, got []event.UpdateEvent, want ...event.UpdateEvent) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("events = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
