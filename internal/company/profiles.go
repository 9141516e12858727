// Package company maps organization names to hiring-difficulty adjustments.
package company

import "strings"

// Neutral values returned when no profile matches.
const (
	NeutralModifier    = 0.0
	NeutralDescription = "Standard hiring process"
)

// Profile describes one class of organizations and how its hiring bar
// shifts the final score.
type Profile struct {
	Name        string
	Companies   []string // Substrings matched against the lowercased label
	Modifier    float64  // Applied to the confidence-weighted score
	Description string
}

// profiles is static configuration; it is never mutated at runtime.
// The slice order is significant: it acts as implicit priority among
// overlapping classes, so the first matching profile wins.
var profiles = []Profile{
	{
		Name:        "big_tech",
		Companies:   []string{"google", "meta", "amazon", "apple", "microsoft", "netflix"},
		Modifier:    -0.15,
		Description: "Higher hiring standards",
	},
	{
		Name:        "unicorn",
		Companies:   []string{"uber", "airbnb", "stripe", "databricks"},
		Modifier:    -0.10,
		Description: "Competitive hiring",
	},
	{
		Name:        "startup",
		Companies:   []string{"startup", "early-stage", "seed", "series-a"},
		Modifier:    0.10,
		Description: "Flexible hiring",
	},
	{
		Name:        "consulting",
		Companies:   []string{"mckinsey", "bcg", "bain", "deloitte", "accenture"},
		Modifier:    -0.08,
		Description: "Structured hiring process",
	},
}

// Adjustment resolves the hiring modifier for an organization label.
// Unknown labels are not an error; they get the neutral modifier.
func Adjustment(name string) (float64, string) {
	lower := strings.ToLower(name)

	for _, profile := range profiles {
		for _, substring := range profile.Companies {
			if strings.Contains(lower, substring) {
				return profile.Modifier, profile.Description
			}
		}
	}

	return NeutralModifier, NeutralDescription
}
