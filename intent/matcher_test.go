package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhraseMatcher_NormalizedMatching(t *testing.T) {
	req := require.New(t)
	matcher, err := NewPhraseMatcher([]string{"that's all", "i'm done", "no more updates"})
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Exact phrase", "that's all", true},
		{"Phrase inside a sentence", "ok so that's all from me today", true},
		{"Punctuation noise", "thats  all!", true},
		{"Missing apostrophe", "im done here", true},
		{"Uppercase", "NO MORE UPDATES", true},
		{"Unrelated text", "i fixed the login bug yesterday", false},
		{"Empty input", "", false},
		{"Only punctuation", "?!...", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, matcher.Contains(tt.input))
		})
	}
}

func TestPhraseMatcher_AccentedPhrases(t *testing.T) {
	req := require.New(t)
	matcher, err := NewPhraseMatcher([]string{"j'ai terminé"})
	req.NoError(err)

	req.True(matcher.Contains("voilà, j'ai terminé"))
	req.True(matcher.Contains("jai terminé merci"))
}
