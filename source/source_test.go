package source

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestStdinSource_ReadsLinesAndEOF(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	src := NewStdinSource(strings.NewReader("first\nsecond\n"), log)

	line, err := src.Next(ctx)
	req.NoError(err)
	req.Equal("first", line)

	line, err = src.Next(ctx)
	req.NoError(err)
	req.Equal("second", line)

	_, err = src.Next(ctx)
	req.ErrorIs(err, io.EOF)
}

func TestStdinSource_CancelUnblocksNext(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// A reader that never delivers a line
	blocked, _ := io.Pipe()
	src := NewStdinSource(blocked, log)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := src.Next(ctx)
	req.ErrorIs(err, context.Canceled)
}

func TestFileSource_ReplaysTranscript(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "transcript.txt")
	req.NoError(os.WriteFile(path, []byte("alice you can start\nyesterday i shipped\ni'm done\n"), 0o600))

	src, err := NewFileSource(path, 0, log)
	req.NoError(err)

	var lines []string
	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		req.NoError(err)
		lines = append(lines, line)
	}
	req.Equal([]string{"alice you can start", "yesterday i shipped", "i'm done"}, lines)
}

func TestFileSource_RejectsBinaryContent(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	path := filepath.Join(t.TempDir(), "not-text.bin")
	// PNG magic bytes
	req.NoError(os.WriteFile(path, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, 0o600))

	_, err := NewFileSource(path, 0, log)
	req.Error(err)
	req.Contains(err.Error(), "expected plain text")
}

func TestFileSource_MissingFile(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.txt"), 0, log)
	require.Error(t, err)
}

func TestChanSource_DeliversAndCloses(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	lines := make(chan string, 2)
	lines <- "hello"
	close(lines)

	src := NewChanSource(lines)
	line, err := src.Next(ctx)
	req.NoError(err)
	req.Equal("hello", line)

	_, err = src.Next(ctx)
	req.ErrorIs(err, io.EOF)
}
