// Package taxonomy provides the canonical skill vocabulary used to extract
// and categorize skills from free-text documents.
package taxonomy

import (
	"sort"
	"strings"
)

// Confidence constants for skill detection
const (
	baseSkillConfidence = 0.5 // Every detected skill starts here
	repeatMentionBonus  = 0.1 // Added per occurrence of the matched variant
	maxSkillConfidence  = 1.0
)

// SkillMatch represents a single detected skill.
// Instances are created by Extract and never mutated afterwards.
type SkillMatch struct {
	Skill      string  `json:"skill"`      // Canonical skill name
	Confidence float64 `json:"confidence"` // Detection confidence in [0,1]
	Source     string  `json:"source"`     // "exact" or "normalized"
}

// Match sources
const (
	SourceExact      = "exact"      // Canonical form found in the text
	SourceNormalized = "normalized" // Found via an alias
)

// Category groups canonical skills under a fusion weight.
type Category struct {
	Weight float64
	Skills map[string][]string // canonical name -> aliases
}

// Categories is the fixed skill taxonomy. Weights sum to 1.0.
// The table is read-only static configuration; it is never mutated at runtime.
var Categories = map[string]Category{
	"programming_languages": {
		Weight: 0.30,
		Skills: map[string][]string{
			"python":     {"py", "python3", "python2"},
			"javascript": {"js", "ecmascript", "es6", "es2020"},
			"java":       {"java8", "java11", "openjdk"},
			"typescript": {"ts"},
			"cpp":        {"c++", "cplusplus"},
			"csharp":     {"c#", ".net"},
			"go":         {"golang"},
			"rust":       {"rust-lang"},
			"swift":      {"swift5"},
			"kotlin":     {"kt"},
		},
	},
	"frameworks_libraries": {
		Weight: 0.25,
		Skills: map[string][]string{
			"react":   {"reactjs", "react.js"},
			"angular": {"angular2", "angularjs"},
			"vue":     {"vuejs", "vue.js"},
			"django":  {"django-rest"},
			"flask":   {"flask-restful"},
			"fastapi": {"fast-api"},
			"spring":  {"spring-boot"},
			"express": {"expressjs", "express.js"},
			"laravel": {"laravel-framework"},
		},
	},
	"databases": {
		Weight: 0.20,
		Skills: map[string][]string{
			"postgresql":    {"postgres", "pg", "psql"},
			"mysql":         {"mariadb"},
			"mongodb":       {"mongo", "nosql"},
			"redis":         {"redis-cache"},
			"elasticsearch": {"elastic", "es"},
			"cassandra":     {"apache-cassandra"},
			"neo4j":         {"graph-database"},
		},
	},
	"cloud_devops": {
		Weight: 0.15,
		Skills: map[string][]string{
			"aws":        {"amazon-web-services", "ec2", "s3"},
			"azure":      {"microsoft-azure"},
			"gcp":        {"google-cloud", "google-cloud-platform"},
			"docker":     {"containerization"},
			"kubernetes": {"k8s", "container-orchestration"},
			"terraform":  {"infrastructure-as-code"},
			"jenkins":    {"ci-cd", "continuous-integration"},
		},
	},
	"soft_skills": {
		Weight: 0.10,
		Skills: map[string][]string{
			"leadership":      {"team-lead", "management"},
			"communication":   {"presentation", "documentation"},
			"problem-solving": {"analytical-thinking"},
			"collaboration":   {"teamwork", "cross-functional"},
			"mentoring":       {"coaching", "training"},
		},
	},
}

// CategoryNames returns the category names in a stable sorted order.
// Map iteration order is randomized in Go, so every consumer that needs
// deterministic output goes through this.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for name := range Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize maps a raw skill mention to its canonical form.
// Unknown skills are returned lowercased and trimmed, which makes the
// function idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	skill := strings.ToLower(strings.TrimSpace(raw))

	for _, category := range Categories {
		for canonical, aliases := range category.Skills {
			if skill == canonical {
				return canonical
			}
			for _, alias := range aliases {
				if skill == alias {
					return canonical
				}
			}
		}
	}

	return skill
}

// CategoryOf returns the category name for a skill, or "" if the skill
// is not part of the taxonomy.
func CategoryOf(skill string) string {
	normalized := Normalize(skill)

	for name, category := range Categories {
		if _, ok := category.Skills[normalized]; ok {
			return name
		}
	}

	return ""
}

// Extract detects taxonomy skills in a document and groups them by category.
// Matching is literal substring containment against the lowercased document.
// A canonical skill is recorded at most once per document: the canonical
// form and its aliases are tried in order and the first hit wins.
func Extract(document string) map[string][]SkillMatch {
	text := strings.ToLower(document)
	skillsByCategory := make(map[string][]SkillMatch, len(Categories))

	for name, category := range Categories {
		var matches []SkillMatch

		for _, canonical := range sortedSkills(category.Skills) {
			variants := append([]string{canonical}, category.Skills[canonical]...)

			for _, variant := range variants {
				if !strings.Contains(text, variant) {
					continue
				}

				source := SourceNormalized
				if variant == canonical {
					source = SourceExact
				}

				matches = append(matches, SkillMatch{
					Skill:      canonical,
					Confidence: detectionConfidence(text, variant),
					Source:     source,
				})
				break // Don't double-count a skill found via multiple variants
			}
		}

		skillsByCategory[name] = matches
	}

	return skillsByCategory
}

// detectionConfidence scores a detected skill by how often its matched
// variant occurs: a fixed base boosted per repetition, capped at 1.0.
func detectionConfidence(text, variant string) float64 {
	occurrences := strings.Count(text, variant)

	confidence := baseSkillConfidence + repeatMentionBonus*float64(occurrences)
	if confidence > maxSkillConfidence {
		confidence = maxSkillConfidence
	}
	return confidence
}

// sortedSkills returns canonical skill names in a stable order so Extract
// output does not depend on map iteration order.
func sortedSkills(skills map[string][]string) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
