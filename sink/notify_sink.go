package sink

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"standup-lab/contract"
	"standup-lab/domain/event"
)

const timeGrain = 100 * time.Millisecond

// NotifySink translates lifecycle events into console status lines.
// Statements are deliberately not announced, they would drown the feed.
type NotifySink struct {
	notifier contract.Notifier
}

func NewNotifySink(notifier contract.Notifier) NotifySink {
	return NotifySink{notifier: notifier}
}

func (s NotifySink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MeetingStarted:
		s.notifier.Status(fmt.Sprintf("Standup started with %s.", joinNames(evt.Participants)))
	case event.SpeakerStarted:
		s.notifier.Status(fmt.Sprintf("%s is now speaking.", title(evt.Name)))
	case event.TimeExceeded:
		s.notifier.Status(fmt.Sprintf("%s exceeded allocated time (%s of %s used).",
			title(evt.Name), evt.Used.Round(timeGrain), evt.Allocated))
	case event.SpeakerStopped:
		s.notifier.Status(fmt.Sprintf("%s finished after %s (%s).",
			title(evt.Name), evt.Used.Round(timeGrain), evt.Reason))
	case event.MeetingEnded:
		s.notifier.Status("Standup ended.")
	}
	return nil
}

func joinNames(names []string) string {
	titled := make([]string, len(names))
	for i, name := range names {
		titled[i] = title(name)
	}
	return strings.Join(titled, ", ")
}

func title(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
