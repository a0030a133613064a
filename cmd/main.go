package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"standup-lab/ai"
	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/internal"
	"standup-lab/notify"
	"standup-lab/report"
	"standup-lab/repositories"
	"standup-lab/runtime"
	"standup-lab/runtime/workers"
	"standup-lab/sink"
	"standup-lab/source"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the meeting lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	roster, err := internal.ParseRoster(config.Participants)
	if err != nil {
		return fmt.Errorf("roster error: %w", err)
	}

	// 2. Databases (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Meeting Setup
	meeting := domain.NewMeeting()
	for _, entry := range roster {
		if err := meeting.Register(entry.Name, entry.Allocated); err != nil {
			return fmt.Errorf("registering %s: %w", entry.Name, err)
		}
	}

	// 4. Input & Notifiers
	var textSource contract.TextSource
	switch config.TranscriptPath {
	case "":
		textSource = source.NewStdinSource(os.Stdin, log)
	default:
		textSource, err = source.NewFileSource(config.TranscriptPath, config.TranscriptDelay, log)
		if err != nil {
			return fmt.Errorf("transcript error: %w", err)
		}
	}

	var notifier contract.Notifier = notify.NewConsoleNotifier(os.Stdout, config.Colours)
	if config.Voice {
		notifier = notify.NewMulti(notifier, notify.NewSpeechNotifier(log))
	}

	// 5. Supervision & Orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	classifier := ai.NewClassifier()
	orchestrator := runtime.NewOrchestrator(
		log, sup, meeting, classifier, textSource, notifier,
		runtime.Settings{
			BufferSize:        config.BufferSize,
			PollInterval:      config.PollInterval,
			SinkTimeout:       config.SinkTimeout,
			TelemetryInterval: config.TelemetryInterval,
		},
	)

	statementRepository := repositories.NewStatementRepository(db, log, nil)
	statementIndex := repositories.NewStatementIndex(blugeWriter, log)
	transcript := report.NewTranscript()
	orchestrator.Add(
		sink.NewStatementSink(statementRepository, log),
		sink.NewIndexSink(statementIndex, log),
		sink.NewNotifySink(notifier),
		transcript,
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Start the Engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	// 8. Wait for all turns to finish or for an interrupt
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case <-orchestrator.Done():
		log.Info("All participants are done")
	}

	// 9. Final Cleanup & Report
	orchestrator.Stop()
	meeting.End()
	// The index sink flushes on MeetingEnded, but an interrupt can land
	// before that event reaches it.
	if err := statementIndex.Flush(); err != nil {
		log.Warn("Index flush failed", "error", err)
	}
	log.Debug("Transcript captured", "entries", len(transcript.Entries()))

	builder := report.NewBuilder(classifier, ai.NewAgendaScorer(), report.DefaultAgenda, log)
	summary := builder.Build(meeting.Snapshot())

	var rendered strings.Builder
	report.Render(&rendered, summary)
	notifier.Summary(rendered.String())

	log.Info("Program stopped cleanly")
	return nil
}
