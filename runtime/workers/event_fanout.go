package workers

import (
	"context"
	"log/slog"
	"time"

	"standup-lab/contract"
	"standup-lab/domain/event"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts domain events to the in-process consumers
// (notifications, storage, index, projections).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries; it preserves the apply order the dispatcher
// produced. A slow sink is bounded by sinkTimeout so it can never stall
// the meeting pipeline.
type EventFanout struct {
	log         *slog.Logger
	events      chan event.DomainEvent
	sinks       []contract.EventSink
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, events chan event.DomainEvent, sinks []contract.EventSink, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, events: events, sinks: sinks, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.fanout(ctx, evt)
		}
	}
}

func (w *EventFanout) fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "error", err)
		}
		cancel()
	}
}
