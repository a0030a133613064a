package workers

import (
	"context"
	"log/slog"
	"sync"

	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/domain/event"
)

// Ensure *DispatcherWorker implements the contract.Worker interface at
// compile time.
var _ contract.Worker = (*DispatcherWorker)(nil)

// WatchStarter spawns the time-budget watch scoping one speaking turn.
type WatchStarter func(ctx context.Context, name string, turn int)

// DispatcherWorker is the serialization point of the engine: the single
// consumer of the command channel and the only writer of meeting state.
// Commands apply strictly in arrival order, which makes every turn
// transition serializable despite the concurrent producers (listener and
// time monitors).
type DispatcherWorker struct {
	meeting    *domain.Meeting
	commands   chan domain.Command
	events     chan event.DomainEvent
	startWatch WatchStarter
	log        *slog.Logger

	done     chan struct{}
	doneOnce sync.Once
}

func NewDispatcherWorker(
	meeting *domain.Meeting,
	commands chan domain.Command,
	events chan event.DomainEvent,
	startWatch WatchStarter,
	log *slog.Logger) *DispatcherWorker {
	return &DispatcherWorker{
		meeting:    meeting,
		commands:   commands,
		events:     events,
		startWatch: startWatch,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Done is closed once every participant reached a terminal state and the
// meeting auto-ended.
func (w *DispatcherWorker) Done() <-chan struct{} { return w.done }

func (w *DispatcherWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.apply(ctx, cmd)
			if err := w.flush(ctx); err != nil {
				return err
			}

			if w.meeting.Complete() {
				w.log.Info("All participants have spoken, ending meeting")
				w.meeting.End()
				if err := w.flush(ctx); err != nil {
					return err
				}
				w.doneOnce.Do(func() { close(w.done) })
				return nil
			}
		}
	}
}

// apply mutates meeting state for one command. Invalid or stale commands
// are reported and dropped, never fatal.
func (w *DispatcherWorker) apply(ctx context.Context, cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.StartCommand:
		turn, err := w.meeting.SetSpeaker(c.Name)
		if err != nil {
			w.log.Warn("Start command refused", "name", c.Name, "error", err)
			return
		}
		w.startWatch(ctx, domain.Normalize(c.Name), turn)

	case domain.StopCommand:
		if err := w.meeting.StopSpeaker(c.Name, c.Reason); err != nil {
			// Stale stop: the speaker already changed or finished.
			w.log.Debug("Stop command dropped", "name", c.Name, "error", err)
		}

	case domain.StatementCommand:
		if err := w.meeting.Record(c.Speaker, c.Text, c.Lang, c.At); err != nil {
			w.log.Debug("Statement refused, speaker no longer has the floor",
				"speaker", c.Speaker, "error", err)
		}

	default:
		w.log.Warn("Unknown command type dropped", "target", cmd.Target())
	}
}

// flush forwards the meeting outbox to the event pipeline, preserving
// apply order.
func (w *DispatcherWorker) flush(ctx context.Context) error {
	for _, evt := range w.meeting.FlushEvents() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case w.events <- evt:
		}
	}
	return nil
}
