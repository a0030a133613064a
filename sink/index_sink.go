package sink

import (
	"context"
	"log/slog"

	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/repositories"
)

// IndexSink forwards recorded statements to the full-text index.
// A meeting ending flushes the pending batch so the inspector sees
// everything without waiting for writer shutdown.
type IndexSink struct {
	index *repositories.StatementIndex
	log   *slog.Logger
}

func NewIndexSink(index *repositories.StatementIndex, log *slog.Logger) IndexSink {
	return IndexSink{index: index, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.StatementRecorded:
		return s.index.Index(domain.Statement{
			ID:      evt.ID,
			Speaker: evt.Speaker,
			Text:    evt.Text,
			Lang:    evt.Lang,
			At:      evt.At,
		})
	case event.MeetingEnded:
		return s.index.Flush()
	default:
		return nil
	}
}
