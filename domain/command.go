package domain

import (
	"time"
)

// StopReason distinguishes an explicit stop cue from the time monitor's
// escalation. The dispatcher applies both the same way; reports and
// notifications keep them apart.
type StopReason string

const (
	ReasonSpoken       StopReason = "spoken"
	ReasonTimeExceeded StopReason = "time_exceeded"
)

// Command is a resolved instruction for the dispatcher. Producers never
// touch meeting state directly; they only emit commands.
type Command interface {
	Target() string
}

// StartCommand hands the floor to a participant, pre-empting whoever
// currently holds it.
type StartCommand struct {
	Name string
	At   time.Time
}

func (c StartCommand) Target() string { return c.Name }

// StopCommand closes the named participant's turn. It is applied only if
// that participant still holds the floor at dispatch time.
type StopCommand struct {
	Name   string
	Reason StopReason
	At     time.Time
}

func (c StopCommand) Target() string { return c.Name }

// StatementCommand records a content line for the current speaker. The
// SPEAKING check happens at apply time, not at classification time.
type StatementCommand struct {
	Speaker string
	Text    string
	Lang    string
	At      time.Time
}

func (c StatementCommand) Target() string { return c.Speaker }
