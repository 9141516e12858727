// Package similarity produces a single similarity scalar between two
// documents, combining a semantic embedding estimate with a lexical
// fallback gated by confidence.
package similarity

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/embedding"
)

// Similarity method tags
const (
	MethodSemantic        = "semantic"
	MethodLexicalFallback = "lexical_fallback"
)

// Confidence model constants. These are hand-tuned values reproduced
// exactly; the blend threshold equals the confidence floor, so the hybrid
// path only engages if the floor is ever lowered.
const (
	confidenceThreshold  = 0.4  // Below this, semantic and lexical scores are blended
	baseConfidence       = 0.4  // Floor for the confidence estimate
	qualityWeight        = 0.2  // Per-document professional-vocabulary weight
	lengthWeight         = 0.1  // Per-document length weight
	resumeTargetWords    = 100  // Resume word count yielding full length credit
	jobTargetWords       = 50   // Job word count yielding full length credit
	fallbackConfidence   = 0.3  // Reported when the embedding backend is unavailable
	blendConfidenceBoost = 0.05 // Small boost applied to blended results
)

// professionalTerms is the fixed professional-register vocabulary used as
// a text quality signal.
var professionalTerms = []string{
	"experience", "skills", "developed", "managed", "led",
	"implemented", "designed", "built", "created", "responsible",
}

// Result carries one similarity estimate with its reliability and the
// method that produced it.
type Result struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
}

// Estimator computes document similarity. The embedding backend is
// optional; a nil embedder downgrades every call to the lexical path.
type Estimator struct {
	embedder embedding.Embedder
}

// NewEstimator creates an estimator. A nil embedder is valid and means
// the semantic path is permanently unavailable.
func NewEstimator(embedder embedding.Embedder) *Estimator {
	return &Estimator{embedder: embedder}
}

// Similarity estimates how similar two documents are. Embedding backend
// failures are never surfaced: they downgrade the call to the lexical
// fallback with a low fixed confidence.
func (e *Estimator) Similarity(ctx context.Context, docA, docB string) Result {
	if e.embedder == nil {
		return e.fallback(docA, docB)
	}

	semantic, err := e.embedSimilarity(ctx, docA, docB)
	if err != nil {
		log.Printf("[similarity] semantic estimate failed, falling back to lexical: %v", err)
		return e.fallback(docA, docB)
	}

	confidence := e.Confidence(docA, docB)
	if confidence < confidenceThreshold {
		lexical := LexicalSimilarity(docA, docB)
		score, method, boosted := blendScores(semantic, lexical, confidence)
		return Result{Score: score, Confidence: boosted, Method: method}
	}

	return Result{Score: semantic, Confidence: confidence, Method: MethodSemantic}
}

// embedSimilarity returns the clamped cosine similarity of the two
// document embeddings. Errors mean the backend is unavailable; the call
// is not retried.
func (e *Estimator) embedSimilarity(ctx context.Context, docA, docB string) (float64, error) {
	vectors, err := e.embedder.Encode(ctx, []string{docA, docB})
	if err != nil {
		return 0, err
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("expected 2 vectors, got %d", len(vectors))
	}

	return clamp01(cosineVectors(vectors[0], vectors[1])), nil
}

// Confidence estimates how reliable a semantic comparison of the two
// documents is, from professional vocabulary presence and document length.
func (e *Estimator) Confidence(docA, docB string) float64 {
	qualityA := professionalTermFraction(docA)
	qualityB := professionalTermFraction(docB)

	lengthA := lengthCredit(docA, resumeTargetWords)
	lengthB := lengthCredit(docB, jobTargetWords)

	confidence := baseConfidence +
		qualityA*qualityWeight + qualityB*qualityWeight +
		lengthA*lengthWeight + lengthB*lengthWeight

	return clamp01(confidence)
}

// blendScores combines the semantic and lexical estimates as a
// confidence-weighted convex combination. The method tag records the
// blend weight so callers can see a hybrid result was produced, and the
// reported confidence is boosted slightly because two independent
// estimators contributed.
func blendScores(semantic, lexical, confidence float64) (score float64, method string, boosted float64) {
	score = semantic*confidence + lexical*(1-confidence)
	method = fmt.Sprintf("hybrid(sem:%.2f)", confidence)
	boosted = clamp01(confidence + blendConfidenceBoost)
	return score, method, boosted
}

// fallback is the lexical-only path used when the embedding backend is
// missing or failing.
func (e *Estimator) fallback(docA, docB string) Result {
	return Result{
		Score:      LexicalSimilarity(docA, docB),
		Confidence: fallbackConfidence,
		Method:     MethodLexicalFallback,
	}
}

// professionalTermFraction returns the fraction of the professional
// vocabulary present in the document.
func professionalTermFraction(doc string) float64 {
	lower := strings.ToLower(doc)

	found := 0
	for _, term := range professionalTerms {
		if strings.Contains(lower, term) {
			found++
		}
	}

	return float64(found) / float64(len(professionalTerms))
}

// lengthCredit normalizes a document's word count against a target
// length, capped at full credit.
func lengthCredit(doc string, targetWords int) float64 {
	words := len(strings.Fields(doc))

	credit := float64(words) / float64(targetWords)
	if credit > 1.0 {
		credit = 1.0
	}
	return credit
}

// cosineVectors computes cosine similarity between two dense embedding
// vectors. Mismatched or zero vectors yield 0.0.
func cosineVectors(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clamp01 bounds a value to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
