package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, category := range Categories {
		total += category.Weight
	}

	assert.InDelta(t, 1.0, total, 0.001)
}

func TestNormalize_CanonicalForm(t *testing.T) {
	assert.Equal(t, "python", Normalize("python"))
	assert.Equal(t, "python", Normalize("Python"))
	assert.Equal(t, "python", Normalize("  PYTHON  "))
}

func TestNormalize_Aliases(t *testing.T) {
	assert.Equal(t, "go", Normalize("golang"))
	assert.Equal(t, "javascript", Normalize("js"))
	assert.Equal(t, "kubernetes", Normalize("k8s"))
	assert.Equal(t, "postgresql", Normalize("postgres"))
	assert.Equal(t, "cpp", Normalize("C++"))
}

func TestNormalize_UnknownSkillPassesThrough(t *testing.T) {
	assert.Equal(t, "cobol", Normalize("COBOL"))
	assert.Equal(t, "some framework", Normalize("  Some Framework "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"golang", "Python", "k8s", "COBOL", "  js "}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", input)
	}
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, "programming_languages", CategoryOf("golang"))
	assert.Equal(t, "databases", CategoryOf("postgres"))
	assert.Equal(t, "cloud_devops", CategoryOf("k8s"))
	assert.Equal(t, "", CategoryOf("cobol"))
}

func TestExtract_CanonicalAndAlias(t *testing.T) {
	doc := "Senior engineer with Python and k8s experience, deploying on AWS."

	skills := Extract(doc)

	languages := skillNames(skills["programming_languages"])
	assert.Contains(t, languages, "python")

	devops := skills["cloud_devops"]
	names := skillNames(devops)
	assert.Contains(t, names, "kubernetes")
	assert.Contains(t, names, "aws")

	for _, match := range devops {
		if match.Skill == "kubernetes" {
			assert.Equal(t, SourceNormalized, match.Source, "k8s is an alias match")
		}
		if match.Skill == "aws" {
			assert.Equal(t, SourceExact, match.Source)
		}
	}
}

func TestExtract_NoDoubleCountAcrossAliases(t *testing.T) {
	doc := "Worked with postgresql, postgres, and psql daily."

	skills := Extract(doc)

	count := 0
	for _, match := range skills["databases"] {
		if match.Skill == "postgresql" {
			count++
		}
	}
	assert.Equal(t, 1, count, "a canonical skill must be recorded at most once")
}

func TestExtract_EmptyDocument(t *testing.T) {
	skills := Extract("")

	assert.Len(t, skills, len(Categories))
	for category, matches := range skills {
		assert.Empty(t, matches, "category %s should have no matches", category)
	}
}

func TestExtract_ConfidenceGrowsWithRepetition(t *testing.T) {
	single := Extract("I know python.")
	repeated := Extract("python python python python")

	assert.Equal(t, 0.6, confidenceOf(t, single, "programming_languages", "python"))
	assert.Equal(t, 0.9, confidenceOf(t, repeated, "programming_languages", "python"))
}

func TestExtract_ConfidenceCapped(t *testing.T) {
	doc := ""
	for i := 0; i < 20; i++ {
		doc += "python "
	}

	skills := Extract(doc)

	assert.Equal(t, 1.0, confidenceOf(t, skills, "programming_languages", "python"))
}

func TestExtract_DeterministicOrder(t *testing.T) {
	doc := "python java go rust typescript"

	first := Extract(doc)
	second := Extract(doc)

	assert.Equal(t, first, second)
}

func skillNames(matches []SkillMatch) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Skill)
	}
	return names
}

func confidenceOf(t *testing.T, skills map[string][]SkillMatch, category, skill string) float64 {
	t.Helper()
	for _, match := range skills[category] {
		if match.Skill == skill {
			return match.Confidence
		}
	}
	t.Fatalf("skill %s not found in category %s", skill, category)
	return 0
}
