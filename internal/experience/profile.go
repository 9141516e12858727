// Package experience derives structured seniority profiles from free text.
package experience

import (
	"regexp"
	"strconv"
	"strings"
)

// Level is a standardized seniority band.
type Level string

// Seniority bands, ordered from least to most senior.
const (
	LevelUnknown   Level = "unknown"
	LevelEntry     Level = "entry"
	LevelJunior    Level = "junior"
	LevelMid       Level = "mid"
	LevelSenior    Level = "senior"
	LevelLead      Level = "lead"
	LevelPrincipal Level = "principal"
	LevelExecutive Level = "executive"
)

// levelHierarchy orders the known bands for adjacency comparisons.
// LevelUnknown is deliberately absent: comparisons involving it fall back
// to a neutral score.
var levelHierarchy = []Level{
	LevelEntry,
	LevelJunior,
	LevelMid,
	LevelSenior,
	LevelLead,
	LevelPrincipal,
	LevelExecutive,
}

// Rank returns the position of a level in the seniority hierarchy,
// or -1 for LevelUnknown.
func (l Level) Rank() int {
	for i, level := range levelHierarchy {
		if level == l {
			return i
		}
	}
	return -1
}

// Profile is the structured experience data extracted from one document.
type Profile struct {
	Years                int     `json:"years"`
	Level                Level   `json:"level"`          // Final reported level (explicit keyword wins)
	InferredLevel        Level   `json:"inferred_level"` // Level derived from years + leadership only
	Confidence           float64 `json:"confidence"`
	LeadershipIndicators int     `json:"leadership_indicators"`
	TechnicalDepth       float64 `json:"technical_depth"`
}

// yearsPatterns is an ordered cascade: the first pattern that matches wins
// and the maximum N across its matches is used. Later patterns are not
// consulted once one yields a match. This first-pattern-wins rule is
// ordering-sensitive for similar phrasings; it is kept intact as a known
// precision limitation rather than silently reordered.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?(?:professional\s+)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:in\s+)?(?:software\s+)?(?:development|engineering)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:year|yr)s?\s+exp(?:erience)?`),
}

// leadershipPatterns capture team sizes from leadership phrasing.
var leadershipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`led\s+(?:a\s+)?team\s+of\s+(\d+)`),
	regexp.MustCompile(`managed\s+(\d+)\s+(?:developers|engineers)`),
	regexp.MustCompile(`mentored\s+(\d+)\s+(?:junior|developers)`),
}

// levelKeyword pairs a band with the phrases that explicitly announce it.
// The slice order is the precedence order for the explicit-level override.
type levelKeyword struct {
	level    Level
	keywords []string
}

var levelKeywords = []levelKeyword{
	{LevelSenior, []string{"senior", "sr."}},
	{LevelLead, []string{"lead", "principal", "staff"}},
	{LevelJunior, []string{"junior", "jr.", "entry"}},
	{LevelMid, []string{"mid-level", "intermediate"}},
}

// depthIndicators is the fixed architecture/scale vocabulary used to
// estimate technical depth.
var depthIndicators = []string{
	"architecture",
	"design patterns",
	"scalability",
	"performance optimization",
	"system design",
	"microservices",
	"distributed systems",
}

// Confidence scoring constants
const (
	baseConfidence       = 0.5
	explicitYearsBonus   = 0.3
	explicitKeywordBonus = 0.2
	minTeamSizeForPromo  = 3
)

// Extract derives an experience profile from free text. Absent signals are
// not errors: they yield zero years, an unknown level and base confidence.
func Extract(text string) Profile {
	lower := strings.ToLower(text)

	years := extractYears(lower)
	leadershipCount, teamSize := extractLeadership(lower)

	inferred := inferLevel(years, leadershipCount, teamSize)

	// Explicit keyword mentions take precedence over the years-derived
	// level for the reported level; the inferred level is retained for
	// consistency checks.
	final := inferred
	if explicit, ok := explicitLevel(lower); ok {
		final = explicit
	} else if years == 0 && leadershipCount == 0 {
		final = LevelUnknown
	}

	return Profile{
		Years:                years,
		Level:                final,
		InferredLevel:        inferred,
		Confidence:           confidence(lower, years),
		LeadershipIndicators: leadershipCount,
		TechnicalDepth:       technicalDepth(lower),
	}
}

// extractYears applies the years cascade: first matching pattern wins,
// maximum value within that pattern's matches.
func extractYears(text string) int {
	for _, pattern := range yearsPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		years := 0
		for _, match := range matches {
			if n, err := strconv.Atoi(match[1]); err == nil && n > years {
				years = n
			}
		}
		return years
	}
	return 0
}

// extractLeadership counts leadership mentions and tracks the largest
// team size claimed.
func extractLeadership(text string) (count, teamSize int) {
	for _, pattern := range leadershipPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		count += len(matches)

		for _, match := range matches {
			if n, err := strconv.Atoi(match[1]); err == nil && n > teamSize {
				teamSize = n
			}
		}
	}
	return count, teamSize
}

// inferLevel maps years into a seniority band, then promotes at most one
// band when the text shows leadership over a team of three or more.
// Promotion never applies at senior or above.
func inferLevel(years, leadershipCount, teamSize int) Level {
	level := LevelEntry
	switch {
	case years >= 15:
		level = LevelPrincipal
	case years >= 10:
		level = LevelLead
	case years >= 6:
		level = LevelSenior
	case years >= 3:
		level = LevelMid
	case years >= 1:
		level = LevelJunior
	}

	if leadershipCount > 0 && teamSize >= minTeamSizeForPromo {
		switch level {
		case LevelEntry, LevelJunior:
			level = LevelMid
		case LevelMid:
			level = LevelSenior
		}
	}

	return level
}

// explicitLevel scans for seniority keywords in precedence order.
func explicitLevel(text string) (Level, bool) {
	for _, entry := range levelKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.level, true
			}
		}
	}
	return LevelUnknown, false
}

// confidence grows monotonically with the number of independent
// corroborating signals: explicit years and explicit level keywords.
func confidence(text string, years int) float64 {
	c := baseConfidence

	if years > 0 {
		c += explicitYearsBonus
	}

	// Only one keyword-category bonus applies, regardless of how many
	// bands are mentioned.
	if _, ok := explicitLevel(text); ok {
		c += explicitKeywordBonus
	}

	if c > 1.0 {
		c = 1.0
	}
	return c
}

// technicalDepth is the fraction of the depth vocabulary found in the text.
func technicalDepth(text string) float64 {
	found := 0
	for _, indicator := range depthIndicators {
		if strings.Contains(text, indicator) {
			found++
		}
	}

	depth := float64(found) / float64(len(depthIndicators))
	if depth > 1.0 {
		depth = 1.0
	}
	return depth
}
