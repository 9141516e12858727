package similarity

import (
	"math"
	"strings"
	"unicode"
)

// N-gram range for the lexical frequency vectors. Trigrams are included
// so multi-word technical terms ("distributed systems design") still
// contribute to overlap.
const (
	minNGram = 1
	maxNGram = 3
)

// LexicalSimilarity computes the cosine similarity of frequency-weighted
// n-gram vectors built over the two-document corpus. It has no external
// dependencies and is always available; degenerate inputs score 0.0.
func LexicalSimilarity(docA, docB string) float64 {
	vecA := ngramFrequencies(docA)
	vecB := ngramFrequencies(docB)

	return cosineFrequencies(vecA, vecB)
}

// tokenize lowercases the text and splits it into alphanumeric word tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// ngramFrequencies builds a term-frequency vector of unigrams through
// trigrams for a document.
func ngramFrequencies(text string) map[string]float64 {
	tokens := tokenize(text)
	frequencies := make(map[string]float64)

	for n := minNGram; n <= maxNGram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			frequencies[gram]++
		}
	}

	return frequencies
}

// cosineFrequencies computes cosine similarity between two sparse
// frequency vectors. Either vector being empty yields 0.0.
func cosineFrequencies(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for gram, weight := range a {
		normA += weight * weight
		if other, ok := b[gram]; ok {
			dot += weight * other
		}
	}
	for _, weight := range b {
		normB += weight * weight
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
