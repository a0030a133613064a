// Package ai ships deterministic baseline implementations of the
// classifier and similarity ports. Trained models plug in behind the same
// contracts; nothing in the engine depends on these baselines.
package ai

import (
	"hash/fnv"
	"strings"
)

// Vectorizer transforms text into fixed-size numerical features using the
// hashing trick, so two pieces of text can be compared without a fitted
// vocabulary.
type Vectorizer struct {
	size int
}

// NewVectorizer initializes a vectorizer with a fixed feature-space size.
func NewVectorizer(size int) *Vectorizer {
	return &Vectorizer{size: size}
}

// Features maps each whitespace token of the lowercased text to a vector
// index via FNV-1a. Term counts are kept: standup statements are short,
// and a repeated word is a real signal for similarity scoring.
func (v *Vectorizer) Features(text string) []float64 {
	vec := make([]float64, v.size)

	for _, w := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(w))
		idx := int(h.Sum32()) % v.size
		vec[idx]++
	}
	return vec
}
