package calculator

import (
	"fmt"
	"math"
)

// DelusionLabel grades a probability given in percent.
func DelusionLabel(p float64) string {
	switch {
	case p < 0.00001:
		return "VIRTUALLY IMPOSSIBLE"
	case p < 0.0001:
		return "COMPLETELY DELUSIONAL"
	case p < 0.001:
		return "EXTREMELY DELUSIONAL"
	case p < 0.01:
		return "VERY DELUSIONAL"
	case p < 0.1:
		return "DELUSIONAL"
	case p < 0.5:
		return "SOMEWHAT DELUSIONAL"
	case p < 1:
		return "CHALLENGING"
	case p < 5:
		return "DIFFICULT BUT POSSIBLE"
	default:
		return "REALISTIC"
	}
}

// TopPercentile renders how exclusive a probability is, or "" when p >= 10.
func TopPercentile(p float64) string {
	if p >= 10 {
		return ""
	}
	percentile := 100 - p
	switch {
	case percentile > 99.99999:
		return "top 0.00001%"
	case percentile > 99.9999:
		return "top 0.0001%"
	case percentile > 99.999:
		return "top 0.001%"
	case percentile > 99.99:
		return "top 0.01%"
	case percentile > 99.9:
		return "top 0.1%"
	case percentile > 99:
		return "top 1%"
	case percentile > 95:
		return "top 5%"
	}
	return fmt.Sprintf("top %d%%", int(math.Round(100-p)))
}

// MarginOfError grows with the number of factors and widens for rare
// results.
func MarginOfError(p float64, factors int) float64 {
	base := 0.1 + float64(factors)*0.05
	switch {
	case p < 0.00001:
		return math.Min(0.95, base*5)
	case p < 0.0001:
		return math.Min(0.9, base*4)
	case p < 0.001:
		return math.Min(0.8, base*3)
	case p < 0.01:
		return math.Min(0.7, base*2)
	case p < 0.1:
		return math.Min(0.6, base*1.5)
	}
	return base
}
