package interfaces

import (
	"context"

	"lumalens/internal/domain/entities"
)

// IEventTracker is the fire-and-forget analytics side channel.
//
// Track must never block the calling request and must never surface an
// error: delivery is at-most-effort, failures are logged and dropped.

type IEventTracker interface {
	Track(eventType string, attributes map[string]interface{})
}

// IEventSink is the durable append-only backend the tracker drains into.

type IEventSink interface {
	Append(ctx context.Context, event entities.AnalyticsEvent) error
}
