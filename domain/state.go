// Package domain contains core concepts of the standup moderation engine.
// This file defines the participant turn lifecycle and its allowed
// transitions. No runtime, channel, or UI logic should be added here.
package domain

import (
	"fmt"

	"standup-lab/errors"
)

// State is the position of a participant in the turn lifecycle.
type State int

const (
	Waiting State = iota
	Speaking
	Exceeded
	Done
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "WAITING"
	case Speaking:
		return "SPEAKING"
	case Exceeded:
		return "EXCEEDED"
	case Done:
		return "DONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// transitions enumerates every legal move. Done and Exceeded->Done are
// terminal paths: nothing leaves Done, and Exceeded can only be closed.
var transitions = map[State][]State{
	Waiting:  {Speaking},
	Speaking: {Waiting, Exceeded, Done},
	Exceeded: {Done},
	Done:     nil,
}

// CanTransition reports whether moving from s to target is enumerated.
func (s State) CanTransition(target State) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition validates and returns the target state, rejecting any move
// not present in the transition table.
func (s State) Transition(target State) (State, error) {
	if !s.CanTransition(target) {
		return s, fmt.Errorf("%w: %s -> %s", errors.ErrInvalidTransition, s, target)
	}
	return target, nil
}
