package analytics

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"lumalens/internal/domain/entities"
	"lumalens/internal/infrastructure/metrics"
	"lumalens/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultQueueSize     = 256
	defaultAppendTimeout = 5 * time.Second
)

// Tracker is the fire-and-forget analytics side channel: Track enqueues and
// returns immediately, a single worker drains the queue into the sink with a
// bounded timeout per append.
//
// Delivery is at-most-effort. A full queue or a failing sink drops the event
// with a warning log and a counter bump; nothing ever propagates back to the
// request that emitted the event, and no ordering is guaranteed.

type Tracker struct {
	sink          interfaces.IEventSink
	queue         chan entities.AnalyticsEvent
	done          chan struct{}
	appendTimeout time.Duration
	closed        atomic.Bool
	closeOnce     sync.Once
}

var _ interfaces.IEventTracker = (*Tracker)(nil)

func NewTracker(sink interfaces.IEventSink) *Tracker {
	return newTracker(sink, defaultQueueSize, defaultAppendTimeout)
}

func newTracker(sink interfaces.IEventSink, queueSize int, appendTimeout time.Duration) *Tracker {
	t := &Tracker{
		sink:          sink,
		queue:         make(chan entities.AnalyticsEvent, queueSize),
		done:          make(chan struct{}),
		appendTimeout: appendTimeout,
	}
	go t.drain()
	return t
}

func (t *Tracker) Track(eventType string, attributes map[string]interface{}) {
	if t.closed.Load() {
		log.Printf("[analytics][tracker] dropped event type=%s reason=closed", eventType)
		metrics.AnalyticsEventsDroppedTotal.Inc()
		return
	}

	ev := entities.AnalyticsEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Attributes: attributes,
		Timestamp:  time.Now().UTC(),
	}

	select {
	case t.queue <- ev:
		metrics.AnalyticsEventsEmittedTotal.Inc()
	default:
		log.Printf("[analytics][tracker] dropped event type=%s reason=queue-full", eventType)
		metrics.AnalyticsEventsDroppedTotal.Inc()
	}
}

func (t *Tracker) drain() {
	defer close(t.done)
	for ev := range t.queue {
		ctx, cancel := context.WithTimeout(context.Background(), t.appendTimeout)
		if err := t.sink.Append(ctx, ev); err != nil {
			log.Printf("[analytics][tracker] append failed event_id=%s type=%s err=%v", ev.ID, ev.Type, err)
			metrics.AnalyticsEventsDroppedTotal.Inc()
		}
		cancel()
	}
}

// Close stops accepting events and waits for the queue to drain.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		t.closed.Store(true)
		close(t.queue)
		<-t.done
	})
}
