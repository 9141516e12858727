// Package types provides the request and response shapes of the scoring API.
package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/taxonomy"
)

// Display heuristics for the per-category skills breakdown. These shape
// what the client renders, not what the engine scored.
const (
	partialCoverageDisplayScore = 85 // Candidate lists skills, job asks for none
	emptyCategoryDisplayScore   = 0
	maxDisplayScore             = 100
)

// experienceBonusDisplay is a fixed presentation value carried in the
// experience block for API compatibility.
const experienceBonusDisplay = 10

// ScoreRequest is the body of POST /score.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=50"`
	JobDescription string `json:"job_description" validate:"required,min=30"`
	CompanyName    string `json:"company_name,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CategoryBreakdown summarizes one taxonomy category for the client.
type CategoryBreakdown struct {
	ResumeSkills    []string `json:"resume_skills"`
	JobRequirements []string `json:"job_requirements"`
	Score           int      `json:"score"`
	Weight          float64  `json:"weight"`
}

// ExperienceBreakdown summarizes the experience comparison for the client.
type ExperienceBreakdown struct {
	ResumeYears        int    `json:"resume_years"`
	ResumeLevelFinal   string `json:"resume_level_final"`
	JobYears           int    `json:"job_years"`
	JobLevel           string `json:"job_level"`
	ExperienceBonus    int    `json:"experience_bonus"`
	LeadershipKeywords int    `json:"leadership_keywords"`
}

// ScoreResponse is the body returned by POST /score.
type ScoreResponse struct {
	OverallScore       int                          `json:"overall_score"`
	SemanticSimilarity float64                      `json:"semantic_similarity"`
	SkillsBreakdown    map[string]CategoryBreakdown `json:"skills_breakdown"`
	ExperienceMatch    ExperienceBreakdown          `json:"experience_match"`
	CompanyModifier    int                          `json:"company_modifier"`
	FinalScore         int                          `json:"final_score"`
	Explanation        string                       `json:"explanation"`
}

// NewScoreResponse converts an engine result into the wire shape.
func NewScoreResponse(result *scoring.Result) ScoreResponse {
	breakdown := make(map[string]CategoryBreakdown, len(taxonomy.Categories))
	for _, name := range taxonomy.CategoryNames() {
		resumeSkills := skillNames(result.Breakdown.ResumeSkills[name])
		jobSkills := skillNames(result.Breakdown.JobSkills[name])

		breakdown[name] = CategoryBreakdown{
			ResumeSkills:    resumeSkills,
			JobRequirements: jobSkills,
			Score:           categoryDisplayScore(resumeSkills, jobSkills),
			Weight:          taxonomy.Categories[name].Weight,
		}
	}

	return ScoreResponse{
		OverallScore:       int(result.OverallScore),
		SemanticSimilarity: result.SemanticSimilarity / 100,
		SkillsBreakdown:    breakdown,
		ExperienceMatch: ExperienceBreakdown{
			ResumeYears:        result.Breakdown.ResumeExperience.Years,
			ResumeLevelFinal:   string(result.Breakdown.ResumeExperience.Level),
			JobYears:           result.Breakdown.JobExperience.Years,
			JobLevel:           string(result.Breakdown.JobExperience.Level),
			ExperienceBonus:    experienceBonusDisplay,
			LeadershipKeywords: result.Breakdown.ResumeExperience.LeadershipIndicators,
		},
		CompanyModifier: int(result.CompanyAdjustment),
		FinalScore:      int(result.FinalScore),
		Explanation:     result.Explanation,
	}
}

// categoryDisplayScore renders one category as an integer percentage: the
// matched fraction when the job states requirements, a flat partial credit
// when only the resume covers the category, zero when both sides are empty.
func categoryDisplayScore(resumeSkills, jobSkills []string) int {
	if len(jobSkills) > 0 {
		matched := 0
		resumeSet := make(map[string]struct{}, len(resumeSkills))
		for _, skill := range resumeSkills {
			resumeSet[skill] = struct{}{}
		}
		for _, skill := range jobSkills {
			if _, ok := resumeSet[skill]; ok {
				matched++
			}
		}
		score := matched * maxDisplayScore / len(jobSkills)
		if score > maxDisplayScore {
			score = maxDisplayScore
		}
		return score
	}
	if len(resumeSkills) > 0 {
		return partialCoverageDisplayScore
	}
	return emptyCategoryDisplayScore
}

// skillNames flattens matches into their canonical names, preserving the
// deterministic extraction order.
func skillNames(matches []taxonomy.SkillMatch) []string {
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match.Skill)
	}
	return names
}
