package calculator

// DefaultRegion is the region the option percentages were measured in.
const DefaultRegion = "us"

const adultShare = 0.76

type Region struct {
	Label string `json:"label"`
	Value string `json:"value"`
	// Population in millions.
	Population float64 `json:"population"`
}

// AdultPopulation is the number of adults in the region.
func (r Region) AdultPopulation() float64 {
	return r.Population * adultShare * 1_000_000
}

// PartneredFraction is the share of adults assumed to be in a relationship.
func (r Region) PartneredFraction() float64 {
	if r.Value == DefaultRegion {
		return 0.53
	}
	return 0.58
}

var regions = []Region{
	{Label: "United States", Value: "us", Population: 333.3},
	{Label: "Global", Value: "global", Population: 8000},
	{Label: "Western Europe", Value: "western-europe", Population: 196},
	{Label: "East Asia", Value: "east-asia", Population: 1700},
	{Label: "South Asia", Value: "south-asia", Population: 1900},
	{Label: "Latin America", Value: "latin-america", Population: 660},
	{Label: "Africa", Value: "africa", Population: 1400},
}

func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

func LookupRegion(value string) (Region, bool) {
	for _, r := range regions {
		if r.Value == value {
			return r, true
		}
	}
	return Region{}, false
}

// resolveRegion falls back to the default region for unknown values.
func resolveRegion(value string) Region {
	if r, ok := LookupRegion(value); ok {
		return r
	}
	r, _ := LookupRegion(DefaultRegion)
	return r
}
