package test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"standup-lab/ai"
	"standup-lab/domain"
	"standup-lab/mocks"
	"standup-lab/report"
	"standup-lab/runtime"
	"standup-lab/runtime/workers"
	"standup-lab/source"
)

func scenarioDurations(t *testing.T) (poll, timeout time.Duration) {
	t.Helper()
	cfg, err := LoadConfig()
	require.NoError(t, err)
	poll, err = time.ParseDuration(cfg.PollInterval)
	require.NoError(t, err)
	timeout, err = time.ParseDuration(cfg.ScenarioTimeout)
	require.NoError(t, err)
	return poll, timeout
}

// Full scripted standup: two speakers, explicit handoffs, auto-end.
func Test_Scenario_FullMeeting(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	poll, timeout := scenarioDurations(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meeting := domain.NewMeeting()
	req.NoError(meeting.Register("alice", time.Minute))
	req.NoError(meeting.Register("bob", time.Minute))

	lines := make(chan string, 16)
	notifier := mocks.NewMockNotifier(ctrl)

	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)
	orchestrator := runtime.NewOrchestrator(
		log, supervisor, meeting, ai.NewClassifier(),
		source.NewChanSource(lines), notifier,
		runtime.Settings{
			BufferSize:        64,
			PollInterval:      poll,
			SinkTimeout:       time.Second,
			TelemetryInterval: time.Minute,
		},
	)

	transcript := report.NewTranscript()
	orchestrator.Add(transcript)

	ctx := context.Background()
	req.NoError(orchestrator.Start(ctx))
	t.Cleanup(orchestrator.Stop)

	speakerIs := func(name string) func() bool {
		return func() bool {
			current, ok := meeting.CurrentSpeaker()
			return ok == (name != "") && current == name
		}
	}
	statements := func(n int) func() bool {
		return func() bool {
			count := 0
			for _, entry := range transcript.Entries() {
				if entry.Kind == "statement" {
					count++
				}
			}
			return count == n
		}
	}
	// The facilitator script, each line waiting for the engine to apply
	// it before the next one, like a human speaking at normal cadence
	say := func(line string, settled func() bool) {
		lines <- line
		req.Eventually(settled, timeout, poll, "line %q never settled", line)
	}

	say("alice, you can start", speakerIs("alice"))
	say("yesterday i fixed the login bug", statements(1))
	say("today i will review the pull requests", statements(2))
	say("i'm done", speakerIs(""))
	say("bob, your turn", speakerIs("bob"))
	say("i am blocked, waiting on the security review", statements(3))
	lines <- "that's all"

	select {
	case <-orchestrator.Done():
	case <-time.After(timeout):
		req.Fail("Meeting should have auto-ended after everyone spoke")
	}

	// The aggregate settled
	req.False(meeting.Active())
	snapshots := meeting.Snapshot()
	req.Equal(domain.Done, snapshots[0].State)
	req.Equal(domain.Done, snapshots[1].State)
	req.Len(snapshots[0].Statements, 2)
	req.Len(snapshots[1].Statements, 1)
	req.Equal("i am blocked, waiting on the security review", snapshots[1].Statements[0].Text)

	// The transcript observed the whole flow in order
	entries := transcript.Entries()
	var kinds []string
	for _, entry := range entries {
		kinds = append(kinds, entry.Kind)
	}
	req.Equal([]string{
		"started", "statement", "statement", "stopped",
		"started", "statement", "stopped",
	}, kinds)

	// And the report partitions what was said
	builder := report.NewBuilder(ai.NewClassifier(), ai.NewAgendaScorer(), report.DefaultAgenda, log)
	r := builder.Build(snapshots)
	req.Len(r.Sections[0].ByCategory[domain.CategoryYesterday], 1)
	req.Len(r.Sections[0].ByCategory[domain.CategoryToday], 1)
	req.Len(r.Sections[1].ByCategory[domain.CategoryBlocker], 1)
}

// A speaker that never stops gets interrupted by the time watch.
func Test_Scenario_TimeExceeded(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	poll, timeout := scenarioDurations(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	meeting := domain.NewMeeting()
	req.NoError(meeting.Register("alice", 5*poll))

	lines := make(chan string, 4)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().
		Interrupt("alice", "Alice, your time is up. Please wrap it up.").
		Times(1)

	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)
	orchestrator := runtime.NewOrchestrator(
		log, supervisor, meeting, ai.NewClassifier(),
		source.NewChanSource(lines), notifier,
		runtime.Settings{
			BufferSize:        64,
			PollInterval:      poll,
			SinkTimeout:       time.Second,
			TelemetryInterval: time.Minute,
		},
	)

	transcript := report.NewTranscript()
	orchestrator.Add(transcript)

	ctx := context.Background()
	req.NoError(orchestrator.Start(ctx))
	t.Cleanup(orchestrator.Stop)

	lines <- "alice you can start"
	// No stop cue ever arrives; the monitor must close the turn

	select {
	case <-orchestrator.Done():
	case <-time.After(timeout):
		req.Fail("Time watch should have ended the only turn")
	}

	snapshot := meeting.Snapshot()[0]
	req.Equal(domain.Done, snapshot.State)
	req.GreaterOrEqual(snapshot.Used, 5*poll)

	var sawExceeded bool
	for _, entry := range transcript.Entries() {
		if entry.Kind == "exceeded" {
			sawExceeded = true
		}
		if entry.Kind == "stopped" {
			req.Equal(string(domain.ReasonTimeExceeded), entry.Text)
		}
	}
	req.True(sawExceeded)
}
