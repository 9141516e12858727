package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalSimilarity_IdenticalDocuments(t *testing.T) {
	doc := "Senior Python developer with Django and AWS experience"

	score := LexicalSimilarity(doc, doc)

	assert.InDelta(t, 1.0, score, 0.001)
}

func TestLexicalSimilarity_DisjointVocabulary(t *testing.T) {
	score := LexicalSimilarity("alpha beta gamma", "delta epsilon zeta")

	assert.Equal(t, 0.0, score)
}

func TestLexicalSimilarity_PartialOverlap(t *testing.T) {
	score := LexicalSimilarity(
		"python django developer",
		"python flask developer",
	)

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

func TestLexicalSimilarity_EmptyDocuments(t *testing.T) {
	assert.Equal(t, 0.0, LexicalSimilarity("", ""))
	assert.Equal(t, 0.0, LexicalSimilarity("some text", ""))
	assert.Equal(t, 0.0, LexicalSimilarity("", "some text"))
}

func TestLexicalSimilarity_CaseAndPunctuationInsensitive(t *testing.T) {
	score := LexicalSimilarity("Python, Django!", "python django")

	assert.InDelta(t, 1.0, score, 0.001)
}

func TestNgramFrequencies_IncludesTrigrams(t *testing.T) {
	frequencies := ngramFrequencies("distributed systems design")

	assert.Equal(t, 1.0, frequencies["distributed systems design"])
	assert.Equal(t, 1.0, frequencies["distributed systems"])
	assert.Equal(t, 1.0, frequencies["systems"])
}

func TestNgramFrequencies_CountsRepeats(t *testing.T) {
	frequencies := ngramFrequencies("go go go")

	assert.Equal(t, 3.0, frequencies["go"])
	assert.Equal(t, 2.0, frequencies["go go"])
}

func TestCosineVectors(t *testing.T) {
	assert.InDelta(t, 1.0, cosineVectors([]float32{1, 0}, []float32{1, 0}), 0.001)
	assert.InDelta(t, 0.0, cosineVectors([]float32{1, 0}, []float32{0, 1}), 0.001)
	assert.Equal(t, 0.0, cosineVectors([]float32{1, 0}, []float32{1}), "mismatched lengths")
	assert.Equal(t, 0.0, cosineVectors(nil, nil))
	assert.Equal(t, 0.0, cosineVectors([]float32{0, 0}, []float32{1, 1}), "zero vector")
}
