// Package scoring fuses skill, experience, semantic and company signals
// into a single bounded compatibility score with an explanation.
package scoring

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-scorer/internal/company"
	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/experience"
	"github.com/jonathan/resume-scorer/internal/similarity"
	"github.com/jonathan/resume-scorer/internal/taxonomy"
)

// DefaultCompanyName is used when the caller does not name a company.
const DefaultCompanyName = "unknown"

// Fusion weights. Hand-tuned values reproduced exactly; not tunable.
const (
	skillsWeight     = 0.60
	semanticWeight   = 0.20
	experienceWeight = 0.20
)

// Category-default scores used when the job side of a category is empty.
// Policy constants, not computed values.
const (
	coverageCategoryScore = 1.0 // Candidate has skills where none were asked for
	neutralCategoryScore  = 0.5 // Neither side mentions the category
)

// Experience-match component weights and credits.
const (
	yearsComponentWeight      = 0.5
	levelComponentWeight      = 0.3
	leadershipComponentWeight = 0.2

	nearYearsRatio      = 0.8 // Ratio at which soft credit starts
	nearYearsCredit     = 0.9
	shortYearsPenalty   = 0.8 // Scales the ratio below nearYearsRatio
	leadershipBase      = 0.7
	leadershipRatioSpan = 0.3
)

// Seniority adjacency credits. Deliberately asymmetric between over- and
// under-qualification; kept piecewise rather than generalized.
const (
	levelExactCredit     = 1.0
	levelOneOverCredit   = 0.9 // Slightly overqualified
	levelOneUnderCredit  = 0.8 // Slightly underqualified
	levelFarOverCredit   = 0.6 // Might decline the role
	levelFarUnderCredit  = 0.4
	levelUnknownCredit   = 0.5
)

// fallbackExplanation flags the all-zero result returned when the
// pipeline fails.
const fallbackExplanation = "Scoring failed - insufficient data"

// Engine orchestrates extraction, similarity estimation and fusion.
// It owns the memoization cache and the (optional) embedding backend;
// the taxonomy and company tables are process-wide immutable state.
type Engine struct {
	estimator *similarity.Estimator
	cache     *resultCache
	group     singleflight.Group
}

// NewEngine creates a scoring engine. A nil embedder is valid: every
// similarity call then takes the lexical-fallback path.
func NewEngine(embedder embedding.Embedder) *Engine {
	return &Engine{
		estimator: similarity.NewEstimator(embedder),
		cache:     newResultCache(),
	}
}

// Score computes the compatibility score for a resume/job/company triple.
// Results are memoized by a content hash of the inputs, so repeated calls
// with identical arguments return the identical cached result. Score
// never fails: unexpected errors inside the pipeline degrade to an
// all-zero fallback result.
func (e *Engine) Score(ctx context.Context, resumeText, jobText, companyName string) *Result {
	if companyName == "" {
		companyName = DefaultCompanyName
	}

	key := cacheKey(resumeText, jobText, companyName)
	if cached, ok := e.cache.get(key); ok {
		return cached
	}

	// Collapse concurrent computations of the same key; the computation
	// is a pure function of the key, so any winner's value is correct.
	value, _, _ := e.group.Do(key, func() (interface{}, error) {
		result := e.compute(ctx, resumeText, jobText, companyName)
		e.cache.set(key, result)
		return result, nil
	})

	return value.(*Result)
}

// CacheSize reports how many distinct input triples have been scored.
func (e *Engine) CacheSize() int {
	return e.cache.len()
}

// compute runs the full fusion pipeline once.
func (e *Engine) compute(ctx context.Context, resumeText, jobText, companyName string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[scoring] pipeline failed, returning fallback result: %v", r)
			result = fallbackResult()
		}
	}()

	resumeSkills := taxonomy.Extract(resumeText)
	jobSkills := taxonomy.Extract(jobText)
	resumeExp := experience.Extract(resumeText)
	jobExp := experience.Extract(jobText)

	semantic := e.estimator.Similarity(ctx, resumeText, jobText)

	skillsScore := skillsMatch(resumeSkills, jobSkills)
	expScore := experienceMatch(resumeExp, jobExp)
	modifier, companyInfo := company.Adjustment(companyName)

	baseScore := skillsScore*skillsWeight +
		semantic.Score*semanticWeight +
		expScore*experienceWeight

	weighted := baseScore * semantic.Confidence
	finalScore := clamp01(weighted + modifier)

	return &Result{
		OverallScore:       baseScore * 100,
		Confidence:         semantic.Confidence,
		SkillsMatch:        skillsScore * 100,
		ExperienceMatch:    expScore * 100,
		SemanticSimilarity: semantic.Score * 100,
		CompanyAdjustment:  modifier * 100,
		FinalScore:         finalScore * 100,
		Explanation:        explanation(skillsScore, semantic, expScore, modifier),
		Breakdown: Breakdown{
			ResumeSkills:     resumeSkills,
			JobSkills:        jobSkills,
			ResumeExperience: resumeExp,
			JobExperience:    jobExp,
			CompanyInfo:      companyInfo,
			MethodUsed:       semantic.Method,
		},
	}
}

// skillsMatch computes the weighted per-category skill overlap. When a
// category has job requirements the score is the matched fraction; a
// category without requirements rewards coverage and never punishes
// absence of unstated requirements.
func skillsMatch(resumeSkills, jobSkills map[string][]taxonomy.SkillMatch) float64 {
	total := 0.0

	for _, name := range taxonomy.CategoryNames() {
		resumeSet := skillSet(resumeSkills[name])
		jobSet := skillSet(jobSkills[name])

		var categoryScore float64
		if len(jobSet) > 0 {
			matched := 0
			for skill := range jobSet {
				if _, ok := resumeSet[skill]; ok {
					matched++
				}
			}
			categoryScore = float64(matched) / float64(len(jobSet))
		} else if len(resumeSet) > 0 {
			categoryScore = coverageCategoryScore
		} else {
			categoryScore = neutralCategoryScore
		}

		total += categoryScore * taxonomy.Categories[name].Weight
	}

	return total
}

// experienceMatch scores how well the resume's experience profile aligns
// with the job's, combining years, seniority adjacency and leadership.
func experienceMatch(resumeExp, jobExp experience.Profile) float64 {
	yearsScore := 1.0
	if jobExp.Years > 0 {
		ratio := float64(resumeExp.Years) / float64(jobExp.Years)
		switch {
		case ratio >= 1.0:
			yearsScore = 1.0
		case ratio >= nearYearsRatio:
			yearsScore = nearYearsCredit
		default:
			yearsScore = ratio * shortYearsPenalty
		}
	}

	levelScore := levelMatch(resumeExp.Level, jobExp.Level)

	leadershipScore := 1.0
	if jobExp.LeadershipIndicators > 0 {
		ratio := float64(resumeExp.LeadershipIndicators) / float64(jobExp.LeadershipIndicators)
		if ratio > 1.0 {
			ratio = 1.0
		}
		leadershipScore = leadershipBase + ratio*leadershipRatioSpan
	}

	return yearsScore*yearsComponentWeight +
		levelScore*levelComponentWeight +
		leadershipScore*leadershipComponentWeight
}

// levelMatch scores seniority adjacency between the candidate's reported
// level and the job's.
func levelMatch(resumeLevel, jobLevel experience.Level) float64 {
	resumeRank := resumeLevel.Rank()
	jobRank := jobLevel.Rank()

	if resumeRank < 0 || jobRank < 0 {
		return levelUnknownCredit
	}

	switch diff := resumeRank - jobRank; {
	case diff == 0:
		return levelExactCredit
	case diff == 1:
		return levelOneOverCredit
	case diff == -1:
		return levelOneUnderCredit
	case diff > 1:
		return levelFarOverCredit
	default:
		return levelFarUnderCredit
	}
}

// explanation renders the human-readable component summary.
func explanation(skillsScore float64, semantic similarity.Result, expScore, modifier float64) string {
	return fmt.Sprintf(
		"Skills match: %.1f%%, Semantic similarity: %.1f%% (%s, conf: %.2f), "+
			"Experience match: %.1f%%, Company adjustment: %+.1f%%",
		skillsScore*100,
		semantic.Score*100,
		semantic.Method,
		semantic.Confidence,
		expScore*100,
		modifier*100,
	)
}

// fallbackResult is the deterministic all-zero result returned when the
// pipeline fails.
func fallbackResult() *Result {
	return &Result{Explanation: fallbackExplanation}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// skillSet collapses matches into a set of canonical skill names.
func skillSet(matches []taxonomy.SkillMatch) map[string]struct{} {
	set := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		set[match.Skill] = struct{}{}
	}
	return set
}
