package source

import (
	"context"
	"io"
)

// ChanSource feeds utterances from a channel. Used by tests and by any
// caller that produces text programmatically. Closing the channel ends
// the source.
type ChanSource struct {
	lines <-chan string
}

func NewChanSource(lines <-chan string) *ChanSource {
	return &ChanSource{lines: lines}
}

func (s *ChanSource) Next(ctx context.Context) (string, error) {
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
