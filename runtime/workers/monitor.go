package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"unicode"

	"standup-lab/contract"
	"standup-lab/domain"
)

var _ contract.Worker = (*TimeMonitorWorker)(nil)

// TimeMonitorWorker watches a single speaking turn. It polls the meeting
// at a fixed interval while the watched participant still holds the floor
// of the same turn, and escalates exactly once when the budget is spent:
// the EXCEEDED transition happens through the meeting's guarded mutation,
// the interruption notice fires, and an internal stop command is enqueued.
// The watch then retires; a new turn gets a new watch.
type TimeMonitorWorker struct {
	meeting  *domain.Meeting
	name     string
	turn     int
	interval time.Duration
	commands chan<- domain.Command
	notifier contract.Notifier
	log      *slog.Logger
}

func NewTimeMonitorWorker(
	meeting *domain.Meeting,
	name string,
	turn int,
	interval time.Duration,
	commands chan<- domain.Command,
	notifier contract.Notifier,
	log *slog.Logger) *TimeMonitorWorker {
	return &TimeMonitorWorker{
		meeting:  meeting,
		name:     name,
		turn:     turn,
		interval: interval,
		commands: commands,
		notifier: notifier,
		log:      log,
	}
}

func (w *TimeMonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping watch", "name", w.name)
			return nil
		case <-ticker.C:
			used, allocated, watching := w.meeting.Progress(w.name, w.turn)
			if !watching {
				// Speaker changed, stopped, or the meeting ended.
				return nil
			}
			if used < allocated {
				continue
			}

			if err := w.meeting.MarkExceeded(w.name, w.turn); err != nil {
				// A stop or handoff interleaved between the poll and
				// the escalation; the command path won the race.
				w.log.Debug("Escalation dropped", "name", w.name, "error", err)
				return nil
			}

			w.log.Info("Speaking time exceeded", "name", w.name, "used", used, "allocated", allocated)
			w.notifier.Interrupt(w.name,
				fmt.Sprintf("%s, your time is up. Please wrap it up.", title(w.name)))

			select {
			case <-ctx.Done():
				return nil
			case w.commands <- domain.StopCommand{Name: w.name, Reason: domain.ReasonTimeExceeded, At: time.Now()}:
			}
			return nil
		}
	}
}

func title(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}
