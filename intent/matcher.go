// Package intent resolves recognized text into authoritative meeting
// commands. It combines a pluggable classifier with keyword fallbacks so
// turn-taking cues favor recall over precision.
package intent

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// PhraseMatcher detects a fixed phrase list inside free text. Phrases and
// text are both normalized (lowercased, punctuation and spacing stripped)
// before matching, so "that's all" still matches "thats  all!".
type PhraseMatcher struct {
	matcher *goahocorasick.Machine
}

// NewPhraseMatcher builds the Aho-Corasick automaton over the normalized
// phrase list.
func NewPhraseMatcher(phrases []string) (*PhraseMatcher, error) {
	patterns := make([][]rune, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = normalizeRunes([]rune(phrase))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &PhraseMatcher{matcher: m}, nil
}

// Contains reports whether any phrase occurs in text.
func (m *PhraseMatcher) Contains(text string) bool {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return false
	}
	return len(m.matcher.MultiPatternSearch(normalized, true)) > 0
}

// normalizeRunes lowercases the input and drops punctuation, spacing and
// symbols so the automaton sees a stable alphabet.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
