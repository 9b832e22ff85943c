package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/project-tracker/internal/app/feed"
	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// notifier publishes mutation events after the change is committed.
// Delivery is best-effort: failures are logged and never reach the caller.
type notifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func (n notifier) publish(ctx context.Context, events ...event.UpdateEvent) {
	if n.publisher == nil {
		return
	}

	for _, ev := range events {
		err := n.publisher.Publish(ctx, ev)
		switch {
		case err == nil:
		case errors.Is(err, feed.ErrNoSubscribers):
			n.logger.DebugContext(ctx, "no subscribers for update event",
				slog.String("kind", string(ev.Kind)),
				slog.String("entity_type", string(ev.EntityType)),
				slog.String("entity_id", ev.EntityID.String()),
			)
		default:
			n.logger.WarnContext(ctx, "failed to publish update event",
				slog.String("kind", string(ev.Kind)),
				slog.String("entity_type", string(ev.EntityType)),
				slog.String("entity_id", ev.EntityID.String()),
				slog.Any("error", err),
			)
		}
	}
}
