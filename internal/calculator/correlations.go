package calculator

// Multipliers applied to an option percentage when a race is selected.
// Keyed by race, then by option value.
var raceCorrelations = map[string]map[string]float64{
	"white": {
		"blonde": 1.8, "blue": 1.9, "green": 1.4, "red": 2.2,
		"6-0": 1.1, "athletic": 1.05, "very-athletic": 1.05,
	},
	"black": {
		"blonde": 0.01, "blue": 0.02, "green": 0.03, "red": 0.01, "gray": 0.04,
		"6-0": 1.15, "6-2": 1.25, "athletic": 1.1, "very-athletic": 1.2,
	},
	"asian": {
		"blonde": 0.001, "blue": 0.001, "green": 0.001, "red": 0.001, "gray": 0.001,
		"6-0": 0.3, "6-2": 0.2, "6-4": 0.1, "6-5": 0.05,
	},
	"hispanic": {
		"blonde": 0.15, "blue": 0.1, "green": 0.2, "red": 0.05, "gray": 0.05,
		"6-0": 0.6, "6-2": 0.4,
	},
}

// Multipliers that move the US percentages to another region. The
// "-female" keys apply to 5-8 and 5-10 when seeking women.
var regionAdjustments = map[string]map[string]float64{
	"global": {
		"blonde": 0.31, "blue": 0.28, "green": 0.29, "gray": 0.3, "red": 0.4,
		"6-0": 0.65, "6-2": 0.5, "6-4": 0.35, "6-5": 0.25,
		"5-10-female": 0.35, "5-8-female": 0.5,
		"college": 0.55, "bachelors": 0.45, "masters": 0.3, "doctorate": 0.25,
		"100k": 0.25, "150k": 0.15, "200k": 0.08, "300k": 0.04, "500k": 0.02,
		"athletic": 0.85, "very-athletic": 0.7,
	},
	"western-europe": {
		"blonde": 1.8, "blue": 1.7, "green": 1.3, "gray": 1.5, "red": 1.4,
		"6-0": 1.1, "6-2": 0.9, "6-4": 0.7,
		"college": 0.9, "bachelors": 0.75, "masters": 0.65, "doctorate": 0.55,
		"100k": 0.5, "150k": 0.35, "200k": 0.25, "300k": 0.15, "500k": 0.1,
		"athletic": 0.9, "very-athletic": 0.8,
	},
	"east-asia": {
		"blonde": 0.001, "blue": 0.001, "green": 0.001, "gray": 0.001, "red": 0.001,
		"6-0": 0.2, "6-2": 0.08, "6-4": 0.02, "6-5": 0.01,
		"college": 0.85, "bachelors": 0.75, "masters": 0.6, "doctorate": 0.5,
		"100k": 0.15, "150k": 0.08, "200k": 0.05, "300k": 0.02, "500k": 0.01,
		"athletic": 0.7, "very-athletic": 0.5,
	},
	"south-asia": {
		"blonde": 0.001, "blue": 0.001, "green": 0.01, "gray": 0.001, "red": 0.001,
		"6-0": 0.15, "6-2": 0.05, "6-4": 0.01, "6-5": 0.005,
		"college": 0.4, "bachelors": 0.3, "masters": 0.2, "doctorate": 0.1,
		"100k": 0.08, "150k": 0.04, "200k": 0.02, "300k": 0.01, "500k": 0.005,
		"athletic": 0.5, "very-athletic": 0.3,
	},
	"latin-america": {
		"blonde": 0.08, "blue": 0.1, "green": 0.15, "gray": 0.05, "red": 0.03,
		"6-0": 0.4, "6-2": 0.2, "6-4": 0.05, "6-5": 0.02,
		"college": 0.35, "bachelors": 0.25, "masters": 0.15, "doctorate": 0.08,
		"100k": 0.1, "150k": 0.05, "200k": 0.02, "300k": 0.01, "500k": 0.005,
		"athletic": 0.7, "very-athletic": 0.5,
	},
	"africa": {
		"blonde": 0.005, "blue": 0.005, "green": 0.01, "gray": 0.003, "red": 0.001,
		"6-0": 0.6, "6-2": 0.4, "6-4": 0.15, "6-5": 0.08,
		"college": 0.25, "bachelors": 0.18, "masters": 0.08, "doctorate": 0.03,
		"100k": 0.05, "150k": 0.02, "200k": 0.01, "300k": 0.003, "500k": 0.001,
		"athletic": 0.6, "very-athletic": 0.4,
	},
}

// pairCorrection multiplies the result when value "with" and at least one
// of "and" were both selected.
type pairCorrection struct {
	with   string
	and    []string
	factor float64
}

var pairCorrections = []pairCorrection{
	{with: "blonde", and: []string{"blue"}, factor: 3.7},
	{with: "blonde", and: []string{"green"}, factor: 2.1},
	{with: "red", and: []string{"green"}, factor: 2.3},
	{with: "masters", and: []string{"100k", "150k"}, factor: 1.8},
	{with: "doctorate", and: []string{"150k", "200k"}, factor: 2.5},
	{with: "very-athletic", and: []string{"6-0"}, factor: 1.4},
	{with: "athletic", and: []string{"50k"}, factor: 1.3},
}

func raceMultiplier(race, value string) float64 {
	if race == AnyValue || value == AnyValue {
		return 1
	}
	if m, ok := raceCorrelations[race][value]; ok {
		return m
	}
	return 1
}

func regionMultiplier(region, value string, lookingForMale bool) float64 {
	if region == DefaultRegion {
		return 1
	}
	key := value
	if !lookingForMale && (value == "5-10" || value == "5-8") {
		key = value + "-female"
	}
	if m, ok := regionAdjustments[region][key]; ok {
		return m
	}
	return 1
}

func crossTraitCorrection(values []string) float64 {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	has := func(v string) bool {
		_, ok := set[v]
		return ok
	}

	factor := 1.0
	for _, pc := range pairCorrections {
		if !has(pc.with) {
			continue
		}
		for _, other := range pc.and {
			if has(other) {
				factor *= pc.factor
				break
			}
		}
	}
	return factor
}
