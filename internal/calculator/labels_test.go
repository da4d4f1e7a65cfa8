package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelusionLabel(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0.000001, "VIRTUALLY IMPOSSIBLE"},
		{0.00005, "COMPLETELY DELUSIONAL"},
		{0.0005, "EXTREMELY DELUSIONAL"},
		{0.005, "VERY DELUSIONAL"},
		{0.05, "DELUSIONAL"},
		{0.1, "SOMEWHAT DELUSIONAL"},
		{0.7, "CHALLENGING"},
		{1, "DIFFICULT BUT POSSIBLE"},
		{5, "REALISTIC"},
		{49, "REALISTIC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DelusionLabel(tt.p), "p=%g", tt.p)
	}
}

func TestTopPercentile(t *testing.T) {
	assert.Equal(t, "", TopPercentile(10))
	assert.Equal(t, "", TopPercentile(49))
	assert.Equal(t, "top 93%", TopPercentile(7))
	assert.Equal(t, "top 5%", TopPercentile(3))
	assert.Equal(t, "top 1%", TopPercentile(0.5))
	assert.Equal(t, "top 0.1%", TopPercentile(0.05))
	assert.Equal(t, "top 0.01%", TopPercentile(0.005))
	assert.Equal(t, "top 0.00001%", TopPercentile(0.0000001))
}

func TestMarginOfError(t *testing.T) {
	assert.InDelta(t, 0.1, MarginOfError(49, 0), 1e-12)
	assert.InDelta(t, 0.3, MarginOfError(20, 4), 1e-12)
	assert.InDelta(t, 0.3, MarginOfError(0.05, 2), 1e-12)
	assert.InDelta(t, 0.6, MarginOfError(0.05, 12), 1e-12)
	assert.InDelta(t, 0.95, MarginOfError(0.000001, 10), 1e-12)
	assert.InDelta(t, 0.8, MarginOfError(0.0005, 5), 1e-12)
}
