package notify

import (
	"standup-lab/contract"
)

// Multi fans every notification out to all configured notifiers.
type Multi struct {
	notifiers []contract.Notifier
}

func NewMulti(notifiers ...contract.Notifier) Multi {
	return Multi{notifiers: notifiers}
}

func (m Multi) Status(message string) {
	for _, n := range m.notifiers {
		n.Status(message)
	}
}

func (m Multi) Interrupt(name, message string) {
	for _, n := range m.notifiers {
		n.Interrupt(name, message)
	}
}

func (m Multi) Summary(report string) {
	for _, n := range m.notifiers {
		n.Summary(report)
	}
}
