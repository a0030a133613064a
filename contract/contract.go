//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"standup-lab/domain"
	"standup-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IntentClassifier is the turn-taking and topic model seen by the core.
// Both modes must behave as pure functions; a failure degrades the
// pipeline to keyword heuristics and must never halt the meeting.
type IntentClassifier interface {
	TurnIntent(text string) (domain.TurnIntent, error)
	Category(text string) (domain.Category, error)
}

// SimilarityScorer matches a statement against the agenda list and
// returns the best item with a score in [0,1].
type SimilarityScorer interface {
	BestMatch(text string, agenda []string) (item string, score float64, err error)
}

// TextSource produces recognized or manually entered lines. It returns
// io.EOF when exhausted; the meeting end is signaled by the core through
// context cancellation, never by the source.
type TextSource interface {
	Next(ctx context.Context) (string, error)
}

// Notifier receives human-readable meeting status, the distinct
// interruption event when a speaker is cut off, and the end-of-meeting
// summary.
type Notifier interface {
	Status(message string)
	Interrupt(name, message string)
	Summary(report string)
}

type IOrchestrator interface {
	Dispatch(cmd domain.Command)
	Start(ctx context.Context) error
	Done() <-chan struct{}
	Stop()
}
