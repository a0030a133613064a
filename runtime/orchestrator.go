package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/intent"
	"standup-lab/runtime/workers"
)

//go:embed phrases/*
var phrasesFolder embed.FS

// joinTimeout bounds how long Stop waits for the pipeline to settle
// before reports are generated.
const joinTimeout = 5 * time.Second

// Settings carries the channel and timing knobs of the engine.
type Settings struct {
	BufferSize        int
	PollInterval      time.Duration
	SinkTimeout       time.Duration
	TelemetryInterval time.Duration
}

// Orchestrator wires the meeting pipeline: listener -> command queue ->
// dispatcher -> meeting -> event fan-out -> sinks, with one supervised
// time watch per speaking turn. It owns the channels; the meeting owns
// the state.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	meeting    *domain.Meeting
	classifier contract.IntentClassifier
	source     contract.TextSource
	notifier   contract.Notifier
	sinks      []contract.EventSink
	commands   chan domain.Command
	events     chan event.DomainEvent
	settings   Settings

	dispatcher *workers.DispatcherWorker
	runDone    chan struct{}
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	meeting *domain.Meeting,
	classifier contract.IntentClassifier,
	source contract.TextSource,
	notifier contract.Notifier,
	settings Settings) *Orchestrator {
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		meeting:    meeting,
		classifier: classifier,
		source:     source,
		notifier:   notifier,
		commands:   make(chan domain.Command, settings.BufferSize),
		events:     make(chan event.DomainEvent, settings.BufferSize),
		settings:   settings,
		runDone:    make(chan struct{}),
	}
}

// Add registers event sinks. Must be called before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sinks = append(o.sinks, sinks...)
}

// Dispatch enqueues a command for the single-consumer dispatcher. A full
// queue drops the command rather than blocking a producer.
func (o *Orchestrator) Dispatch(cmd domain.Command) {
	select {
	case o.commands <- cmd:
	default:
		o.log.Warn(fmt.Sprintf("Command queue full, dropping command for %s", cmd.Target()))
	}
}

// QueueLen exposes the command backlog for telemetry.
func (o *Orchestrator) QueueLen() int { return len(o.commands) }

// Start prepares the resolver and all workers, opens the meeting, and
// launches supervision. Preparation (phrase loading, automaton build)
// happens before anything runs.
func (o *Orchestrator) Start(ctx context.Context) error {
	resolver, err := o.prepareResolver("phrases")
	if err != nil {
		return err
	}

	o.mu.Lock()
	sinks := append([]contract.EventSink(nil), o.sinks...)
	o.mu.Unlock()

	o.dispatcher = workers.NewDispatcherWorker(o.meeting, o.commands, o.events, o.startWatch, o.log)
	listener := workers.NewListenerWorker(o.source, resolver, o.meeting, o.Dispatch, o.log)
	fanout := workers.NewEventFanout(o.log, o.events, sinks, o.settings.SinkTimeout)
	telemetry := workers.NewTelemetryWorker(o.log, o.settings.TelemetryInterval, o.QueueLen)

	if err := o.meeting.Start(); err != nil {
		return err
	}
	// The MeetingStarted event predates the dispatcher loop; seed it into
	// the pipeline so sinks see the full history.
	for _, evt := range o.meeting.FlushEvents() {
		o.events <- evt
	}

	o.supervisor.Add(o.dispatcher, listener, fanout, telemetry)

	o.log.Info("Starting orchestrator and all supervised workers")
	go func() {
		o.supervisor.Run(ctx)
		close(o.runDone)
	}()
	return nil
}

// startWatch spawns the supervised time watch scoped to one speaking
// turn. The monitor enqueues its escalation through the same command
// channel every other producer uses.
func (o *Orchestrator) startWatch(ctx context.Context, name string, turn int) {
	monitor := workers.NewTimeMonitorWorker(
		o.meeting, name, turn, o.settings.PollInterval, o.commands, o.notifier, o.log)
	o.supervisor.Start(ctx, monitor)
}

// Done is closed when the meeting auto-ends because every participant
// finished.
func (o *Orchestrator) Done() <-chan struct{} {
	if o.dispatcher == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return o.dispatcher.Done()
}

// Stop initiates a graceful shutdown and joins the pipeline with a
// bounded timeout, guaranteeing the report builder never races a
// background task.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()

	select {
	case <-o.runDone:
	case <-time.After(joinTimeout):
		o.log.Warn("Timed out waiting for workers to settle")
	}
}

// prepareResolver loads the embedded phrase lists and builds the keyword
// automatons backing the classifier fallback.
func (o *Orchestrator) prepareResolver(path string) (*intent.Resolver, error) {
	loader := NewPhraseLoader(phrasesFolder)

	startData, err := loader.LoadAll(path + "/start")
	if err != nil {
		return nil, err
	}
	stopData, err := loader.LoadAll(path + "/stop")
	if err != nil {
		return nil, err
	}

	o.log.Info(fmt.Sprintf("%d start phrases loaded [%s]",
		len(startData.Phrases), strings.Join(startData.Files, ",")))
	o.log.Info(fmt.Sprintf("%d stop phrases loaded [%s]",
		len(stopData.Phrases), strings.Join(stopData.Files, ",")))

	startMatcher, err := intent.NewPhraseMatcher(startData.Phrases)
	if err != nil {
		return nil, err
	}
	stopMatcher, err := intent.NewPhraseMatcher(stopData.Phrases)
	if err != nil {
		return nil, err
	}

	return intent.NewResolver(o.classifier, startMatcher, stopMatcher, o.log), nil
}
