package ports

import (
	"context"

	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
)

// EventPublisher delivers mutation events to live subscribers.
// Publish never blocks on a slow subscriber.
type EventPublisher interface {
	Publish(ctx context.Context, ev event.UpdateEvent) error
}

// Subscription is one subscriber's view of the event stream. It receives
// only events published after it was created, in publish order.
type Subscription interface {
	// Events returns the delivery channel. It is closed by Close or when the
	// feed shuts down.
	Events() <-chan event.UpdateEvent

	// Dropped reports how many events were discarded because the
	// subscriber fell behind.
	Dropped() uint64

	// Close detaches the subscription. Safe to call more than once.
	Close()
}

// EventFeed is the publisher plus subscription side of the event broadcaster.
type EventFeed interface {
	EventPublisher
	Subscribe() (Subscription, error)
}
