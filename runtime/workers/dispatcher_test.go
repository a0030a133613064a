package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"standup-lab/domain"
	"standup-lab/domain/event"
)

func newDispatcherFixture(t *testing.T, names ...string) (*domain.Meeting, chan domain.Command, chan event.DomainEvent) {
	t.Helper()
	meeting := domain.NewMeeting()
	for _, name := range names {
		require.NoError(t, meeting.Register(name, time.Minute))
	}
	require.NoError(t, meeting.Start())
	return meeting, make(chan domain.Command, 16), make(chan event.DomainEvent, 64)
}

func drain(events chan event.DomainEvent) []event.DomainEvent {
	var out []event.DomainEvent
	for {
		select {
		case evt := <-events:
			out = append(out, evt)
		default:
			return out
		}
	}
}

func TestDispatcher_AppliesCommandsInOrder(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	meeting, commands, events := newDispatcherFixture(t, "alice", "bob")

	var watches atomic.Int32
	dispatcher := NewDispatcherWorker(meeting, commands, events,
		func(ctx context.Context, name string, turn int) { watches.Add(1) }, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() { runDone <- dispatcher.Run(ctx) }()

	now := time.Now()
	commands <- domain.StartCommand{Name: "alice", At: now}
	commands <- domain.StatementCommand{Speaker: "alice", Text: "update one", Lang: "en", At: now}
	commands <- domain.StopCommand{Name: "alice", Reason: domain.ReasonSpoken, At: now}
	commands <- domain.StartCommand{Name: "bob", At: now}
	commands <- domain.StopCommand{Name: "bob", Reason: domain.ReasonSpoken, At: now}

	// Everyone terminal: the dispatcher auto-ends the meeting
	select {
	case <-dispatcher.Done():
	case <-time.After(time.Second):
		req.Fail("Dispatcher should have signaled completion")
	}
	req.NoError(<-runDone)

	req.False(meeting.Active())
	req.Equal(int32(2), watches.Load())

	types := drain(events)
	req.IsType(event.MeetingStarted{}, types[0])
	req.IsType(event.MeetingEnded{}, types[len(types)-1])
}

func TestDispatcher_StaleStopIsDropped(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	meeting, commands, events := newDispatcherFixture(t, "alice", "bob")

	dispatcher := NewDispatcherWorker(meeting, commands, events,
		func(ctx context.Context, name string, turn int) {}, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	now := time.Now()
	commands <- domain.StartCommand{Name: "alice", At: now}
	commands <- domain.StartCommand{Name: "bob", At: now}
	// Stale: alice no longer holds the floor
	commands <- domain.StopCommand{Name: "alice", Reason: domain.ReasonSpoken, At: now}

	req.Eventually(func() bool {
		current, ok := meeting.CurrentSpeaker()
		return ok && current == "bob"
	}, time.Second, 10*time.Millisecond)

	// Bob survived the stale stop
	snapshots := meeting.Snapshot()
	req.Equal(domain.Waiting, snapshots[0].State)
	req.Equal(domain.Speaking, snapshots[1].State)
}

func TestDispatcher_StatementAfterStopRefused(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	meeting, commands, events := newDispatcherFixture(t, "alice", "bob")

	dispatcher := NewDispatcherWorker(meeting, commands, events,
		func(ctx context.Context, name string, turn int) {}, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	now := time.Now()
	commands <- domain.StartCommand{Name: "alice", At: now}
	commands <- domain.StopCommand{Name: "alice", Reason: domain.ReasonSpoken, At: now}
	// Arrives after the stop: must not be attributed
	commands <- domain.StatementCommand{Speaker: "alice", Text: "late line", Lang: "en", At: now}

	req.Eventually(func() bool {
		return meeting.Snapshot()[0].State == domain.Done
	}, time.Second, 10*time.Millisecond)

	req.Empty(meeting.Snapshot()[0].Statements)
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	meeting, commands, events := newDispatcherFixture(t, "alice")

	dispatcher := NewDispatcherWorker(meeting, commands, events,
		func(ctx context.Context, name string, turn int) {}, log)

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- dispatcher.Run(ctx) }()

	cancel()
	select {
	case err := <-runDone:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("Dispatcher should have stopped on cancel")
	}
}
