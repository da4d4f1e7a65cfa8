package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRisk_Boundaries(t *testing.T) {
	tests := []struct {
		red  int
		want RiskLevel
	}{
		{0, RiskLow},
		{29, RiskLow},
		{30, RiskModerate},
		{59, RiskModerate},
		{60, RiskHigh},
		{79, RiskHigh},
		{80, RiskSevere},
		{100, RiskSevere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRisk(tt.red).Level, "red=%d", tt.red)
	}
}

func TestClassifyRisk_TotalAndMonotonic(t *testing.T) {
	prev := -1
	for red := 0; red <= 100; red++ {
		r := ClassifyRisk(red)
		rank := r.Level.Rank()
		assert.GreaterOrEqual(t, rank, 0)
		assert.GreaterOrEqual(t, rank, prev)
		assert.NotEmpty(t, r.Message)
		assert.NotEmpty(t, r.Color)
		prev = rank
	}
}
