package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustment_BigTech(t *testing.T) {
	modifier, description := Adjustment("Google")

	assert.Equal(t, -0.15, modifier)
	assert.Equal(t, "Higher hiring standards", description)
}

func TestAdjustment_SubstringMatch(t *testing.T) {
	modifier, _ := Adjustment("Amazon Web Services EMEA")

	assert.Equal(t, -0.15, modifier)
}

func TestAdjustment_Startup(t *testing.T) {
	modifier, description := Adjustment("early-stage startup")

	assert.Equal(t, 0.10, modifier)
	assert.Equal(t, "Flexible hiring", description)
}

func TestAdjustment_Consulting(t *testing.T) {
	modifier, _ := Adjustment("Accenture")

	assert.Equal(t, -0.08, modifier)
}

func TestAdjustment_Unicorn(t *testing.T) {
	modifier, _ := Adjustment("Stripe, Inc.")

	assert.Equal(t, -0.10, modifier)
}

func TestAdjustment_UnknownIsNeutral(t *testing.T) {
	modifier, description := Adjustment("unknown")

	assert.Equal(t, NeutralModifier, modifier)
	assert.Equal(t, NeutralDescription, description)
}

func TestAdjustment_FirstMatchWins(t *testing.T) {
	// Matches both big_tech ("google") and startup ("startup"); the
	// earlier class takes priority.
	modifier, _ := Adjustment("google startup accelerator")

	assert.Equal(t, -0.15, modifier)
}

func TestAdjustment_CaseInsensitive(t *testing.T) {
	modifier, _ := Adjustment("NETFLIX")

	assert.Equal(t, -0.15, modifier)
}
