package intent

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"standup-lab/contract"
	"standup-lab/domain"
)

// MeetingView is the read-only meeting state the resolver consults. The
// resolver never mutates anything; it only emits commands.
type MeetingView interface {
	CurrentSpeaker() (string, bool)
	Names() []string
	NextWaiting() (string, bool)
}

// Resolver turns one recognized line into at most one command.
//
// Classifier output and keyword matches are ORed, never ANDed: missing a
// start or stop cue stalls the meeting, while a false positive is cheap
// to recover from by speaking again.
type Resolver struct {
	classifier   contract.IntentClassifier
	startPhrases *PhraseMatcher
	stopPhrases  *PhraseMatcher
	log          *slog.Logger
	now          func() time.Time
}

func NewResolver(classifier contract.IntentClassifier, startPhrases, stopPhrases *PhraseMatcher, log *slog.Logger) *Resolver {
	return &Resolver{
		classifier:   classifier,
		startPhrases: startPhrases,
		stopPhrases:  stopPhrases,
		log:          log,
		now:          time.Now,
	}
}

// Resolve applies the priority rules, in order: start detection wins while
// the floor is free; once someone holds it, stop detection wins over
// recording the line as content. A line is never both a stop cue and
// content of the turn it ends. The boolean is false when the line has no
// state effect.
func (r *Resolver) Resolve(raw, lang string, view MeetingView) (domain.Command, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return nil, false
	}

	label := r.classify(text)
	isStart := label == domain.IntentStart || r.startPhrases.Contains(text)
	isStop := label == domain.IntentStop || r.stopPhrases.Contains(text)

	current, hasSpeaker := view.CurrentSpeaker()

	switch {
	case isStart && !hasSpeaker:
		target, ok := r.pickTarget(text, view)
		if !ok {
			r.log.Info("Start cue with no waiting participant, dropped", "text", text)
			return nil, false
		}
		return domain.StartCommand{Name: target, At: r.now()}, true

	case isStop && hasSpeaker:
		return domain.StopCommand{Name: current, Reason: domain.ReasonSpoken, At: r.now()}, true

	case hasSpeaker && !isStart && !isStop:
		return domain.StatementCommand{Speaker: current, Text: text, Lang: lang, At: r.now()}, true

	default:
		r.log.Debug("No floor effect, line discarded", "text", text)
		return nil, false
	}
}

// classify queries the turn-taking model, degrading to IntentOther on any
// failure so a broken model can never crash the meeting.
func (r *Resolver) classify(text string) domain.TurnIntent {
	label, err := r.classifier.TurnIntent(text)
	if err != nil {
		r.log.Warn("Turn intent classifier failed, falling back to keywords", "error", err)
		return domain.IntentOther
	}
	return label
}

// pickTarget searches registered names as literal substrings of the text,
// in registration order for determinism, then falls back to the next
// WAITING participant.
func (r *Resolver) pickTarget(text string, view MeetingView) (string, bool) {
	for _, name := range view.Names() {
		if strings.Contains(text, name) {
			r.log.Debug(fmt.Sprintf("Start cue names %s", name))
			return name, true
		}
	}
	return view.NextWaiting()
}
