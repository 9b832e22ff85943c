// Package feed implements the in-process event broadcaster behind the live
// update feed. Each subscriber owns a bounded queue; publishing never blocks,
// and a subscriber that falls behind loses its oldest queued events first.
package feed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// DefaultBufferSize is the per-subscriber queue capacity used when New is
// given a non-positive size.
const DefaultBufferSize = 64

var (
	// ErrClosed is returned by Publish and Subscribe after Close.
	ErrClosed = errors.New("feed: closed")

	// ErrNoSubscribers is returned by Publish when nobody is listening.
	// The event is discarded.
	ErrNoSubscribers = errors.New("feed: no subscribers")
)

// Compile-time interface checks.
var (
	_ ports.EventFeed     = (*Bus)(nil)
	_ ports.HealthChecker = (*Bus)(nil)
)

// Bus fans each published event out to every current subscription.
// Safe for concurrent use.
type Bus struct {
	mu         sync.RWMutex
	subs       map[*subscription]struct{}
	bufferSize int
	closed     bool
	metrics    *telemetry.Metrics
}

// New creates a Bus whose subscriptions buffer up to bufferSize events.
// metrics may be nil.
func New(bufferSize int, metrics *telemetry.Metrics) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		subs:       make(map[*subscription]struct{}),
		bufferSize: bufferSize,
		metrics:    metrics,
	}
}

// Publish delivers ev to every subscription registered before the call.
// Events published by one goroutine reach each subscriber in publish order.
func (b *Bus) Publish(ctx context.Context, ev event.UpdateEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}
	if len(b.subs) == 0 {
		return ErrNoSubscribers
	}

	attrs := metric.WithAttributes(
		telemetry.AttrEventKind.String(string(ev.Kind)),
		telemetry.AttrEntityType.String(string(ev.EntityType)),
	)
	for sub := range b.subs {
		if sub.deliver(ev) && b.metrics != nil {
			b.metrics.FeedEventsDropped.Add(ctx, 1, attrs)
		}
	}
	if b.metrics != nil {
		b.metrics.FeedEventsPublished.Add(ctx, 1, attrs)
	}
	return nil
}

// Subscribe registers a new subscription. It receives only events published
// after Subscribe returns.
func (b *Bus) Subscribe() (ports.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	sub := &subscription{
		bus: b,
		ch:  make(chan event.UpdateEvent, b.bufferSize),
	}
	b.subs[sub] = struct{}{}
	b.addSubscribers(1)
	return sub, nil
}

// Subscribers returns the number of attached subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Name implements ports.HealthChecker.
func (b *Bus) Name() string {
	return "feed"
}

// HealthCheck implements ports.HealthChecker. A closed bus is not ready:
// it can no longer accept subscribers.
func (b *Bus) HealthCheck(_ context.Context) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}
	return nil
}

// Close detaches and closes every subscription. Later Publish and Subscribe
// calls fail with ErrClosed. Close is idempotent.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		sub.closeChan()
		delete(b.subs, sub)
		b.addSubscribers(-1)
	}
	return nil
}

func (b *Bus) remove(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	sub.closeChan()
	b.addSubscribers(-1)
}

func (b *Bus) addSubscribers(n int64) {
	if b.metrics != nil {
		b.metrics.FeedSubscribers.Add(context.Background(), n)
	}
}

type subscription struct {
	bus *Bus

	// mu serializes deliveries and guards ch against send-after-close.
	mu      sync.Mutex
	ch      chan event.UpdateEvent
	done    bool
	dropped atomic.Uint64
}

func (s *subscription) Events() <-chan event.UpdateEvent { return s.ch }

func (s *subscription) Dropped() uint64 { return s.dropped.Load() }

func (s *subscription) Close() { s.bus.remove(s) }

// deliver enqueues ev, evicting the oldest queued event when the queue is
// full. Reports whether an event was dropped.
func (s *subscription) deliver(ev event.UpdateEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return false
	}

	select {
	case s.ch <- ev:
		return false
	default:
	}

	// The consumer may drain concurrently, so the eviction is best-effort
	// and the retry send can still find room without dropping anything.
	dropped := false
	select {
	case <-s.ch:
		dropped = true
	default:
	}
	select {
	case s.ch <- ev:
	default:
		dropped = true
	}
	if dropped {
		s.dropped.Add(1)
	}
	return dropped
}

func (s *subscription) closeChan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	s.done = true
	close(s.ch)
}
