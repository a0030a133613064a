package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"

	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/intent"
)

var _ contract.Worker = (*ListenerWorker)(nil)

// ListenerWorker consumes the text source, resolves each line through the
// intent pipeline and enqueues the resulting command. It never touches
// meeting state itself.
type ListenerWorker struct {
	source   contract.TextSource
	resolver *intent.Resolver
	view     intent.MeetingView
	dispatch func(domain.Command)
	log      *slog.Logger
}

func NewListenerWorker(
	source contract.TextSource,
	resolver *intent.Resolver,
	view intent.MeetingView,
	dispatch func(domain.Command),
	log *slog.Logger) *ListenerWorker {
	return &ListenerWorker{
		source:   source,
		resolver: resolver,
		view:     view,
		dispatch: dispatch,
		log:      log,
	}
}

func (w *ListenerWorker) Run(ctx context.Context) error {
	for {
		line, err := w.source.Next(ctx)
		switch {
		case errors.Is(err, io.EOF):
			w.log.Debug("Text source exhausted")
			return nil
		case ctx.Err() != nil:
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case err != nil:
			// Recognition hiccups are the source's problem; the core
			// only ever acts on well-formed text.
			w.log.Warn("Text source error, line skipped", "error", err)
			continue
		}

		text := strings.ToLower(strings.TrimSpace(line))
		if text == "" {
			continue
		}

		info := whatlanggo.Detect(text)
		lang := info.Lang.Iso6391()

		cmd, ok := w.resolver.Resolve(text, lang, w.view)
		if !ok {
			continue
		}
		w.log.Debug("Line resolved", "text", text, "lang", lang, "target", cmd.Target())
		w.dispatch(cmd)
	}
}
