// Package source provides the text inputs feeding the listener worker.
// Every source yields one utterance per Next call and io.EOF when the
// input is exhausted.
package source

import (
	"bufio"
	"context"
	"io"
	"log/slog"
)

// StdinSource reads utterances line by line from an interactive reader.
// The blocking Scan runs in its own goroutine so Next stays cancellable.
type StdinSource struct {
	lines chan string
	log   *slog.Logger
}

func NewStdinSource(r io.Reader, log *slog.Logger) *StdinSource {
	s := &StdinSource{
		lines: make(chan string),
		log:   log,
	}
	go s.pump(r)
	return s
}

func (s *StdinSource) pump(r io.Reader) {
	defer close(s.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		s.log.Warn("Input scanner stopped", "error", err)
	}
}

func (s *StdinSource) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
