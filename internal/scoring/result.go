package scoring

import (
	"github.com/jonathan/resume-scorer/internal/experience"
	"github.com/jonathan/resume-scorer/internal/taxonomy"
)

// Result is the complete scoring outcome for one resume/job/company triple.
// Score fields are on a 0-100 scale; Confidence stays in [0,1].
type Result struct {
	OverallScore       float64   `json:"overall_score"`
	Confidence         float64   `json:"confidence"`
	SkillsMatch        float64   `json:"skills_match"`
	ExperienceMatch    float64   `json:"experience_match"`
	SemanticSimilarity float64   `json:"semantic_similarity"`
	CompanyAdjustment  float64   `json:"company_adjustment"`
	FinalScore         float64   `json:"final_score"`
	Explanation        string    `json:"explanation"`
	Breakdown          Breakdown `json:"breakdown"`
}

// Breakdown carries the intermediate extraction results that fed the
// final score, for explanation and API rendering.
type Breakdown struct {
	ResumeSkills     map[string][]taxonomy.SkillMatch `json:"resume_skills"`
	JobSkills        map[string][]taxonomy.SkillMatch `json:"job_skills"`
	ResumeExperience experience.Profile               `json:"resume_experience"`
	JobExperience    experience.Profile               `json:"job_experience"`
	CompanyInfo      string                           `json:"company_info"`
	MethodUsed       string                           `json:"method_used"`
}
