package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrDuplicateParticipant = fmt.Errorf("participant already registered")
	ErrUnknownParticipant   = fmt.Errorf("participant is not registered")
	ErrInvalidAllocation    = fmt.Errorf("allocated time must be positive")
	ErrInvalidTransition    = fmt.Errorf("invalid state transition")
	ErrMeetingActive        = fmt.Errorf("meeting already started")
	ErrMeetingInactive      = fmt.Errorf("meeting is not active")
	ErrNoParticipants       = fmt.Errorf("no participants registered")
	ErrNotSpeaking          = fmt.Errorf("participant is not the current speaker")
	ErrEmptyPhrases         = fmt.Errorf("no phrases have been found")
)
