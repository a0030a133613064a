// Package event defines the domain events emitted by the Meeting outbox.
// Events are immutable facts; sinks consume them for notifications,
// storage, indexing, and projections.
package event

import (
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	OccurredAt() time.Time
}

type MeetingStarted struct {
	Participants []string
	At           time.Time
}

func (e MeetingStarted) OccurredAt() time.Time { return e.At }

// SpeakerStarted fires when a participant takes the floor. Previous is the
// pre-empted speaker, empty when the floor was free.
type SpeakerStarted struct {
	Name     string
	Previous string
	At       time.Time
}

func (e SpeakerStarted) OccurredAt() time.Time { return e.At }

type SpeakerStopped struct {
	Name   string
	Used   time.Duration
	Reason string
	At     time.Time
}

func (e SpeakerStopped) OccurredAt() time.Time { return e.At }

// TimeExceeded fires exactly once per over-budget turn, before the
// escalation stop takes effect.
type TimeExceeded struct {
	Name      string
	Used      time.Duration
	Allocated time.Duration
	At        time.Time
}

func (e TimeExceeded) OccurredAt() time.Time { return e.At }

type StatementRecorded struct {
	ID      uuid.UUID
	Speaker string
	Text    string
	Lang    string
	At      time.Time
}

func (e StatementRecorded) OccurredAt() time.Time { return e.At }

type MeetingEnded struct {
	At time.Time
}

func (e MeetingEnded) OccurredAt() time.Time { return e.At }
