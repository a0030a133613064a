// Package domain contains core concepts of the standup moderation engine.
// This file defines Participant entities and their invariants.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Statement is an immutable content line recorded while its speaker held
// the floor.
type Statement struct {
	ID      uuid.UUID
	Speaker string
	Text    string
	Lang    string
	At      time.Time
}

// Participant tracks one attendee's time budget and turn state.
// All mutation happens through the owning Meeting, under its lock.
type Participant struct {
	Name      string
	Allocated time.Duration

	used       time.Duration
	state      State
	startedAt  *time.Time
	statements []Statement
}

// State returns the current lifecycle position.
func (p *Participant) State() State { return p.state }

// Used returns the accumulated speaking time, excluding any turn still in
// flight. It never decreases.
func (p *Participant) Used() time.Duration { return p.used }

// Statements returns a copy of the recorded content lines, in order.
func (p *Participant) Statements() []Statement {
	out := make([]Statement, len(p.statements))
	copy(out, p.statements)
	return out
}

// speakingFor computes the elapsed time of the running turn, or zero when
// the clock is not running for this participant.
func (p *Participant) speakingFor(now time.Time) time.Duration {
	if p.startedAt == nil {
		return 0
	}
	return now.Sub(*p.startedAt)
}

// ParticipantSnapshot is a read-only copy of a participant, safe to hand
// to report builders and sinks after the meeting settled.
type ParticipantSnapshot struct {
	Name       string
	Allocated  time.Duration
	Used       time.Duration
	State      State
	Statements []Statement
}

func (p *Participant) snapshot(now time.Time) ParticipantSnapshot {
	return ParticipantSnapshot{
		Name:       p.Name,
		Allocated:  p.Allocated,
		Used:       p.used + p.speakingFor(now),
		State:      p.state,
		Statements: p.Statements(),
	}
}
