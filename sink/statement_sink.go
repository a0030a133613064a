// Package sink holds the event consumers fed by the fanout worker.
// Sinks only observe the meeting; they never dispatch commands back.
package sink

import (
	"context"
	"log/slog"

	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/repositories"
)

type StatementSink struct {
	repository repositories.IStatementRepository
	log        *slog.Logger
}

func NewStatementSink(repository repositories.IStatementRepository, log *slog.Logger) StatementSink {
	return StatementSink{repository: repository, log: log}
}

func (s StatementSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.StatementRecorded:
		return s.repository.Store(toStatement(evt))
	default:
		return nil
	}
}

func toStatement(evt event.StatementRecorded) domain.Statement {
	return domain.Statement{
		ID:      evt.ID,
		Speaker: evt.Speaker,
		Text:    evt.Text,
		Lang:    evt.Lang,
		At:      evt.At,
	}
}
