package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FileSource replays a transcript file line by line, optionally pacing
// lines with a fixed delay to simulate live speech.
type FileSource struct {
	lines []string
	pos   int
	delay time.Duration
	log   *slog.Logger
}

// NewFileSource loads the whole transcript up front. The file must sniff
// as plain text; anything else is refused before the meeting starts.
func NewFileSource(path string, delay time.Duration, log *slog.Logger) (*FileSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		return nil, err
	}
	detected := mimetype.Detect(sniffBuf[:n])
	if !strings.HasPrefix(detected.String(), "text/") {
		return nil, fmt.Errorf("transcript %s is %s, expected plain text", path, detected)
	}

	// Cursor needs to be at the beginning after sniffing
	if _, err = file.Seek(0, 0); err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Info("Transcript loaded", "path", path, "lines", len(lines))

	return &FileSource{lines: lines, delay: delay, log: log}, nil
}

func (s *FileSource) Next(ctx context.Context) (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}
