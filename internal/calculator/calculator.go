package calculator

type ConfidenceLevel string

const (
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceVeryLow  ConfidenceLevel = "very low"
)

// Rank orders levels from high (0) to very low (3); -1 when unknown.
func (c ConfidenceLevel) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 0
	case ConfidenceModerate:
		return 1
	case ConfidenceLow:
		return 2
	case ConfidenceVeryLow:
		return 3
	default:
		return -1
	}
}

// capAt lowers c to limit if limit is worse.
func (c ConfidenceLevel) capAt(limit ConfidenceLevel) ConfidenceLevel {
	if limit.Rank() > c.Rank() {
		return limit
	}
	return c
}

type Result struct {
	// Probability is in percent of the adult population.
	Probability        float64         `json:"probability"`
	PeopleCount        float64         `json:"people_count"`
	RealDatingPoolSize float64         `json:"real_dating_pool_size"`
	ConfidenceLevel    ConfidenceLevel `json:"confidence_level"`
	MarginOfError      float64         `json:"margin_of_error"`
	Delusion           string          `json:"delusion"`
	TopPercentile      string          `json:"top_percentile,omitempty"`
	FactorCount        int             `json:"factor_count"`
	AdultPopulation    float64         `json:"adult_population"`
	Region             string          `json:"region"`
}

func baseProbability(lookingForMale bool) float64 {
	if lookingForMale {
		return 49
	}
	return 51
}

// Compute estimates the share of adults in region matching the selected
// criteria. Unknown regions are treated as the default region. The race
// selection is resolved before any other criterion so the result does not
// depend on criteria order.
func Compute(criteria Criteria, lookingForMale bool, region string) Result {
	reg := resolveRegion(region)
	p := baseProbability(lookingForMale)
	confidence := ConfidenceHigh
	factors := 0

	race := AnyValue
	for _, c := range criteria {
		if c.Name != RaceCriterion {
			continue
		}
		if opt, ok := c.selectedOption(); ok {
			race = opt.Value
			p = p * opt.Percentage / 100
			factors++
		}
	}

	var traits []string
	for _, c := range criteria {
		if c.Name == RaceCriterion {
			continue
		}
		opt, ok := c.selectedOption()
		if !ok {
			continue
		}

		adjusted := opt.Percentage * raceMultiplier(race, opt.Value)
		if reg.Value != DefaultRegion {
			m := regionMultiplier(reg.Value, opt.Value, lookingForMale)
			adjusted *= m
			if m != 1 {
				confidence = confidence.capAt(ConfidenceLow)
			}
		}

		traits = append(traits, opt.Value)
		p = p * adjusted / 100
		factors++
	}

	p *= crossTraitCorrection(traits)

	switch {
	case factors > 7:
		confidence = confidence.capAt(ConfidenceVeryLow)
	case factors > 5:
		confidence = confidence.capAt(ConfidenceLow)
	case factors > 3:
		confidence = confidence.capAt(ConfidenceModerate)
	}
	if p < 0.001 {
		confidence = confidence.capAt(ConfidenceVeryLow)
	}

	adults := reg.AdultPopulation()
	people := p / 100 * adults
	return Result{
		Probability:        p,
		PeopleCount:        people,
		RealDatingPoolSize: people * (1 - reg.PartneredFraction()),
		ConfidenceLevel:    confidence,
		MarginOfError:      MarginOfError(p, factors),
		Delusion:           DelusionLabel(p),
		TopPercentile:      TopPercentile(p),
		FactorCount:        factors,
		AdultPopulation:    adults,
		Region:             reg.Value,
	}
}
