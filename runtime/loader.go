// Package runtime wires the meeting engine: channel plumbing, worker
// registration, and infrastructure-level loading. It orchestrates the
// system without containing turn-taking rules.
package runtime

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"

	"standup-lab/errors"
)

// PhraseData carries the result of the loading process including metadata
// for logging.
type PhraseData struct {
	Phrases []string
	Files   []string
}

// PhraseLoader reads turn-taking phrase lists from embedded files.
type PhraseLoader struct {
	fs embed.FS
}

func NewPhraseLoader(f embed.FS) *PhraseLoader {
	return &PhraseLoader{fs: f}
}

// LoadAll scans the given directory path in the embedded FS and parses
// every .txt file into a unique, order-preserving phrase list.
func (l *PhraseLoader) LoadAll(path string) (*PhraseData, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	var files []string
	var phrases []string
	seen := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := l.fs.ReadFile(path + "/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// A scanner handles both \n and \r\n line endings correctly
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if line == "" {
				continue
			}
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			phrases = append(phrases, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(phrases) == 0 {
		return nil, errors.ErrEmptyPhrases
	}

	return &PhraseData{Phrases: phrases, Files: files}, nil
}
