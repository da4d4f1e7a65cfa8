package assessment

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskSevere   RiskLevel = "Severe"
)

// Rank orders tiers from Low (0) to Severe (3); unknown levels rank -1.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskSevere:
		return 3
	}
	return -1
}

type RiskAssessment struct {
	Level   RiskLevel `json:"level"`
	Message string    `json:"message"`
	Color   string    `json:"color"`
}

// ClassifyRisk maps a red score to a tier using half-open intervals
// [0,30) [30,60) [60,80) [80,100].
func ClassifyRisk(redScore int) RiskAssessment {
	switch {
	case redScore < 30:
		return RiskAssessment{
			Level:   RiskLow,
			Message: "Low Risk - Few concerning behaviors identified. Continue to pay attention to the relationship dynamics.",
			Color:   "bg-green-500",
		}
	case redScore < 60:
		return RiskAssessment{
			Level:   RiskModerate,
			Message: "Moderate Risk - Some concerning patterns detected. Consider discussing these issues openly.",
			Color:   "bg-yellow-500",
		}
	case redScore < 80:
		return RiskAssessment{
			Level:   RiskHigh,
			Message: "High Risk - Significant concerns detected. Seriously reflect on whether this relationship is healthy for you.",
			Color:   "bg-red-500",
		}
	default:
		return RiskAssessment{
			Level:   RiskSevere,
			Message: "Severe Risk - Very serious concerns detected. This relationship shows multiple danger signs that should not be ignored.",
			Color:   "bg-red-600",
		}
	}
}
