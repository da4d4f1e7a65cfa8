package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

func TestVerdict_Brackets(t *testing.T) {
	cases := map[int]string{
		100:  "Exceptional Match",
		70:   "Exceptional Match",
		69:   "Very Promising",
		10:   "Generally Positive",
		0:    "Mixed Signals",
		-10:  "Mixed Signals",
		-11:  "Concerning Imbalance",
		-70:  "Seriously Problematic",
		-71:  "Run, Don't Walk",
		-100: "Run, Don't Walk",
	}
	for net, want := range cases {
		assert.Equal(t, want, Verdict(net).Title, "net=%d", net)
	}
	assert.Contains(t, CompatibilityDescription(-100), "cat in a bathtub")
}

func TestAdvice_CriticalConcerns(t *testing.T) {
	e := newTestEngine()
	sel := domain.Selections{
		"respect_&_boundaries_physical_boundaries": domain.VeryNegative,
		"communication_honesty":                    domain.VeryNegative,
		"trust_reliability":                        domain.VeryPositive,
	}
	net := e.ComputeScore(sel).NetScore

	advice := e.Advice(net, sel)

	assert.Contains(t, advice, "Prioritize your wellbeing and safety when considering next steps.")
	assert.Contains(t, advice, "Some of these behaviors (like physical intimidation or isolation) are serious warning signs that should not be ignored.")
	assert.Contains(t, advice, "Issues with honesty and trust are foundational problems that are very difficult to rebuild once broken.")
	assert.Contains(t, advice, "Despite the concerns, there are meaningful strengths in this relationship that could serve as a foundation for improvement.")
}

func TestAdvice_Healthy(t *testing.T) {
	e := newTestEngine()

	advice := e.Advice(50, nil)

	assert.Len(t, advice, 2)
}

func TestSatiricalAdvice(t *testing.T) {
	assert.Equal(t, "Immediate Action Required", SatiricalAdvice(50).Title)
	assert.Equal(t, "Caution: Healthy Relationship Detected", SatiricalAdvice(1).Title)
	assert.Equal(t, "Promising Toxic Potential", SatiricalAdvice(0).Title)
	assert.Equal(t, "Jackpot! Keeper Alert!", SatiricalAdvice(-50).Title)
}
