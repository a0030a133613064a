package ai

import (
	"fmt"
	"math"
)

// featureSize is shared by every AgendaScorer so statement and agenda
// vectors live in the same space.
const featureSize = 512

// AgendaScorer is the baseline similarity port: cosine similarity between
// hashed term vectors. Both vectors are non-negative, so the score lands
// in [0,1] without clamping.
type AgendaScorer struct {
	vectorizer *Vectorizer
}

func NewAgendaScorer() *AgendaScorer {
	return &AgendaScorer{vectorizer: NewVectorizer(featureSize)}
}

// BestMatch returns the agenda item whose vector is closest to the
// statement's, with its similarity score. Ties keep the earlier agenda
// item, matching the fixed agenda order.
func (s *AgendaScorer) BestMatch(text string, agenda []string) (string, float64, error) {
	if len(agenda) == 0 {
		return "", 0, fmt.Errorf("empty agenda")
	}

	features := s.vectorizer.Features(text)
	best := agenda[0]
	bestScore := 0.0
	for _, item := range agenda {
		score := cosine(features, s.vectorizer.Features(item))
		if score > bestScore {
			best = item
			bestScore = score
		}
	}
	return best, bestScore, nil
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
