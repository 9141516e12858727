package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_YearsFromProfessionalExperience(t *testing.T) {
	profile := Extract("Engineer with 8 years of professional experience in Python.")

	assert.Equal(t, 8, profile.Years)
	assert.Equal(t, LevelSenior, profile.InferredLevel)
}

func TestExtract_FirstPatternWins(t *testing.T) {
	// Both phrasings are present; only the first matching pattern is
	// consulted, so the 15 from the development phrasing is ignored.
	profile := Extract("10 years of experience overall, including 15 years in software development")

	assert.Equal(t, 10, profile.Years)
}

func TestExtract_MaxWithinWinningPattern(t *testing.T) {
	profile := Extract("3 years of experience with Go and 7 years of experience with Java")

	assert.Equal(t, 7, profile.Years)
}

func TestExtract_NoSignals(t *testing.T) {
	profile := Extract("I enjoy gardening and cooking.")

	assert.Equal(t, 0, profile.Years)
	assert.Equal(t, LevelUnknown, profile.Level)
	assert.Equal(t, LevelEntry, profile.InferredLevel)
	assert.Equal(t, 0.5, profile.Confidence)
	assert.Equal(t, 0, profile.LeadershipIndicators)
	assert.Equal(t, 0.0, profile.TechnicalDepth)
}

func TestExtract_LevelBands(t *testing.T) {
	cases := []struct {
		years int
		text  string
		level Level
	}{
		{0, "recent graduate building personal projects", LevelEntry},
		{2, "2 years of experience", LevelJunior},
		{4, "4 years of experience", LevelMid},
		{8, "8 years of experience", LevelSenior},
		{12, "12 years of experience", LevelLead},
		{20, "20 years of experience", LevelPrincipal},
	}

	for _, tc := range cases {
		profile := Extract(tc.text)
		assert.Equal(t, tc.level, profile.InferredLevel, "text: %s", tc.text)
	}
}

func TestExtract_LeadershipPromotion(t *testing.T) {
	profile := Extract("2 years of experience. Recently I led a team of 4 on a migration.")

	assert.Equal(t, 2, profile.Years)
	assert.Equal(t, 1, profile.LeadershipIndicators)
	assert.Equal(t, LevelMid, profile.InferredLevel, "junior promotes one band with a team of 3+")
}

func TestExtract_PromotionSkippedForSmallTeams(t *testing.T) {
	profile := Extract("2 years of experience. I led a team of 2.")

	assert.Equal(t, LevelJunior, profile.InferredLevel)
}

func TestExtract_PromotionCappedAtSenior(t *testing.T) {
	profile := Extract("8 years of experience. Managed 10 engineers across two offices.")

	assert.Equal(t, LevelSenior, profile.InferredLevel, "promotion never applies at senior or above")
}

func TestExtract_ExplicitLevelOverridesInferred(t *testing.T) {
	// 2 years would infer junior, but the explicit mention wins for the
	// reported level. The inferred level is retained.
	profile := Extract("Senior Developer with 2 years of experience")

	assert.Equal(t, LevelSenior, profile.Level)
	assert.Equal(t, LevelJunior, profile.InferredLevel)
}

func TestExtract_ExplicitKeywordPrecedence(t *testing.T) {
	// "senior" is checked before "lead", so a text mentioning both
	// reports senior.
	profile := Extract("Senior engineer and tech lead, 9 years of experience")

	assert.Equal(t, LevelSenior, profile.Level)
}

func TestExtract_ConfidenceAccumulates(t *testing.T) {
	neither := Extract("I write code.")
	yearsOnly := Extract("5 years of experience")
	both := Extract("Senior engineer with 5 years of experience")

	assert.Equal(t, 0.5, neither.Confidence)
	assert.InDelta(t, 0.8, yearsOnly.Confidence, 0.001)
	assert.InDelta(t, 1.0, both.Confidence, 0.001)
}

func TestExtract_SingleKeywordBonus(t *testing.T) {
	// Multiple level keywords still contribute only one bonus.
	profile := Extract("Senior staff engineer, previously junior developer, 5 years of experience")

	assert.InDelta(t, 1.0, profile.Confidence, 0.001)
}

func TestExtract_TechnicalDepth(t *testing.T) {
	profile := Extract("Designed microservices and distributed systems at scale.")

	assert.InDelta(t, 2.0/7.0, profile.TechnicalDepth, 0.001)
}

func TestExtract_LeadershipCountsAndTeamSize(t *testing.T) {
	profile := Extract("Led a team of 6 and mentored 3 junior engineers. 7 years of experience.")

	assert.Equal(t, 2, profile.LeadershipIndicators)
}

func TestLevelRank(t *testing.T) {
	assert.Equal(t, 0, LevelEntry.Rank())
	assert.Equal(t, 3, LevelSenior.Rank())
	assert.Equal(t, 6, LevelExecutive.Rank())
	assert.Equal(t, -1, LevelUnknown.Rank())
}
