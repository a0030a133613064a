package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"standup-lab/domain"
)

func TestClassifier_TurnIntent(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name     string
		input    string
		expected domain.TurnIntent
	}{
		{"Start cue", "alice, you can start", domain.IntentStart},
		{"Start cue alternate phrasing", "take it away bob", domain.IntentStart},
		{"Stop cue", "ok that's all from me", domain.IntentStop},
		{"Stop cue alternate phrasing", "no more updates today... i'm done", domain.IntentStop},
		{"Plain content", "i fixed the login bug", domain.IntentOther},
		{"Empty text", "", domain.IntentOther},
		{"Majority of cues wins", "go ahead, and when you're finished say that's all", domain.IntentStop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := classifier.TurnIntent(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, label)
		})
	}
}

func TestClassifier_Category(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name     string
		input    string
		expected domain.Category
	}{
		{"Yesterday work", "yesterday I finished the migration", domain.CategoryYesterday},
		{"Today plan", "today I will review the pull requests", domain.CategoryToday},
		{"Blocker", "I'm blocked, waiting on the security review", domain.CategoryBlocker},
		{"Blocker wins over tense", "yesterday I got stuck on the deploy", domain.CategoryBlocker},
		{"No cue defaults to today", "refactoring the parser", domain.CategoryToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := classifier.Category(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, category)
		})
	}
}
