package report

import (
	"context"
	"sync"
	"time"

	"standup-lab/domain/event"
)

// TranscriptEntry is one chronological line of the meeting transcript.
type TranscriptEntry struct {
	At      time.Time
	Speaker string
	Kind    string
	Text    string
}

// Transcript projects domain events into a chronological meeting log.
// It only observes; it never emits events or touches the meeting.
type Transcript struct {
	mu      sync.Mutex
	entries []TranscriptEntry
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.SpeakerStarted:
		t.entries = append(t.entries, TranscriptEntry{
			At: evt.At, Speaker: evt.Name, Kind: "started",
		})
	case event.StatementRecorded:
		t.entries = append(t.entries, TranscriptEntry{
			At: evt.At, Speaker: evt.Speaker, Kind: "statement", Text: evt.Text,
		})
	case event.TimeExceeded:
		t.entries = append(t.entries, TranscriptEntry{
			At: evt.At, Speaker: evt.Name, Kind: "exceeded",
		})
	case event.SpeakerStopped:
		t.entries = append(t.entries, TranscriptEntry{
			At: evt.At, Speaker: evt.Name, Kind: "stopped", Text: evt.Reason,
		})
	}
	return nil
}

func (t *Transcript) Entries() []TranscriptEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TranscriptEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
