package notify

import (
	"log/slog"
)

// SpeechNotifier stands in for a text-to-speech backend. Until external
// calls are wired, spoken lines are logged so operators can follow what
// would have been voiced.
type SpeechNotifier struct {
	log *slog.Logger
}

func NewSpeechNotifier(log *slog.Logger) SpeechNotifier {
	return SpeechNotifier{log: log}
}

func (n SpeechNotifier) Status(message string) {
	n.log.Info("Voice status", "message", message)
}

func (n SpeechNotifier) Interrupt(name, message string) {
	n.log.Info("Voice interrupt", "name", name, "message", message)
}

func (n SpeechNotifier) Summary(report string) {
	n.log.Info("Voice summary", "length", len(report))
}
