package calculator

// AnyValue is the option value that matches everyone.
const AnyValue = "any"

// Criterion names referenced by the computation.
const (
	RaceCriterion      = "Race/Ethnicity"
	HeightCriterion    = "Height"
	IncomeCriterion    = "Income"
	EducationCriterion = "Education"
	BodyTypeCriterion  = "Body Type"
)

type Option struct {
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// Criterion is one demographic filter. Options is the list currently in
// effect; for gender-specific criteria it is one of MaleOptions or
// FemaleOptions. Selected is empty when nothing is chosen.
type Criterion struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Options       []Option `json:"options"`
	MaleOptions   []Option `json:"-"`
	FemaleOptions []Option `json:"-"`
	Selected      string   `json:"selected,omitempty"`
}

func (c Criterion) GenderSpecific() bool {
	return c.MaleOptions != nil && c.FemaleOptions != nil
}

// Option returns the option with the given value from the active list.
func (c Criterion) Option(value string) (Option, bool) {
	for _, o := range c.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// selectedOption reports the active non-"any" choice.
func (c Criterion) selectedOption() (Option, bool) {
	if c.Selected == "" || c.Selected == AnyValue {
		return Option{}, false
	}
	return c.Option(c.Selected)
}

func (c Criterion) clone() Criterion {
	out := c
	out.Options = cloneOptions(c.Options)
	out.MaleOptions = cloneOptions(c.MaleOptions)
	out.FemaleOptions = cloneOptions(c.FemaleOptions)
	return out
}

func cloneOptions(in []Option) []Option {
	if in == nil {
		return nil
	}
	out := make([]Option, len(in))
	copy(out, in)
	return out
}

const (
	census = "US Census Bureau, 2023"
	cdc    = "CDC, 2023"
	ncbi   = "National Center for Biotechnology Information, 2023"
	aao    = "American Academy of Ophthalmology, 2023"
	pew    = "Pew Research, 2023"
	gallup = "Gallup Poll, 2023"
)

var builtinCriteria = []Criterion{
	{
		Name:        RaceCriterion,
		Description: "Racial/ethnic demographics vary significantly by region",
		Options: []Option{
			{Label: "Any race/ethnicity", Value: AnyValue, Percentage: 100},
			{Label: "White/Caucasian", Value: "white", Percentage: 57.8, Description: "57.8% of US population", Source: census},
			{Label: "Black/African American", Value: "black", Percentage: 14.1, Description: "14.1% of US population", Source: census},
			{Label: "Hispanic/Latino", Value: "hispanic", Percentage: 19.1, Description: "19.1% of US population", Source: census},
			{Label: "Asian", Value: "asian", Percentage: 6.4, Description: "6.4% of US population", Source: census},
			{Label: "Native American", Value: "native", Percentage: 1.3, Description: "1.3% of US population", Source: census},
			{Label: "Other/Mixed", Value: "mixed", Percentage: 1.3, Description: "~1.3% of US population", Source: census},
		},
	},
	{
		Name:        HeightCriterion,
		Description: "Height distributions vary by gender and ethnicity",
		MaleOptions: []Option{
			{Label: "Any height", Value: AnyValue, Percentage: 100},
			{Label: `5'8" or taller`, Value: "5-8", Percentage: 64.2, Description: `~64.2% of US men are 5'8" or taller`, Source: cdc},
			{Label: `5'10" or taller`, Value: "5-10", Percentage: 37.8, Description: `~37.8% of US men are 5'10" or taller`, Source: cdc},
			{Label: `6' or taller`, Value: "6-0", Percentage: 14.7, Description: `~14.7% of US men are 6' or taller`, Source: cdc},
			{Label: `6'2" or taller`, Value: "6-2", Percentage: 4.8, Description: `~4.8% of US men are 6'2" or taller`, Source: cdc},
			{Label: `6'4" or taller`, Value: "6-4", Percentage: 1.2, Description: `~1.2% of US men are 6'4" or taller`, Source: cdc},
			{Label: `6'5" or taller`, Value: "6-5", Percentage: 0.4, Description: `Only ~0.4% of US men are 6'5" or taller`, Source: cdc},
		},
		FemaleOptions: []Option{
			{Label: "Any height", Value: AnyValue, Percentage: 100},
			{Label: `5'4" or taller`, Value: "5-4", Percentage: 61.5, Description: `~61.5% of US women are 5'4" or taller`, Source: cdc},
			{Label: `5'6" or taller`, Value: "5-6", Percentage: 29.7, Description: `~29.7% of US women are 5'6" or taller`, Source: cdc},
			{Label: `5'8" or taller`, Value: "5-8", Percentage: 10.2, Description: `~10.2% of US women are 5'8" or taller`, Source: cdc},
			{Label: `5'10" or taller`, Value: "5-10", Percentage: 2.3, Description: `Only ~2.3% of US women are 5'10" or taller`, Source: cdc},
			{Label: `6' or taller`, Value: "6-0", Percentage: 0.5, Description: `Less than 0.5% of US women are 6' or taller`, Source: cdc},
		},
	},
	{
		Name:        "Hair Color",
		Description: "Natural hair color distributions vary significantly by ethnicity",
		Options: []Option{
			{Label: "Any hair color", Value: AnyValue, Percentage: 100},
			{Label: "Brown hair (natural)", Value: "brown", Percentage: 58.2, Description: "~58.2% of US population has natural brown hair", Source: "Multiple anthropological studies, 2023"},
			{Label: "Blonde hair (natural)", Value: "blonde", Percentage: 13.1, Description: "~13.1% of US population has natural blonde hair", Source: ncbi},
			{Label: "Black hair (natural)", Value: "black", Percentage: 26.8, Description: "~26.8% of US population has natural black hair", Source: ncbi},
			{Label: "Red hair (natural)", Value: "red", Percentage: 1.9, Description: "Only ~1.9% of US population has natural red hair", Source: ncbi},
		},
	},
	{
		Name:        "Eye Color",
		Description: "Eye color distributions vary by ethnicity and region",
		Options: []Option{
			{Label: "Any eye color", Value: AnyValue, Percentage: 100},
			{Label: "Brown eyes", Value: "brown", Percentage: 56.1, Description: "~56.1% of US population has brown eyes", Source: aao},
			{Label: "Blue eyes", Value: "blue", Percentage: 25.2, Description: "~25.2% of US population has blue eyes", Source: aao},
			{Label: "Hazel eyes", Value: "hazel", Percentage: 16.3, Description: "~16.3% of US population has hazel eyes", Source: aao},
			{Label: "Green eyes", Value: "green", Percentage: 8.6, Description: "Only ~8.6% of US population has green eyes", Source: aao},
			{Label: "Gray eyes", Value: "gray", Percentage: 0.8, Description: "Less than 1% of US population has true gray eyes", Source: aao},
		},
	},
	{
		Name:        IncomeCriterion,
		Description: "Income distributions vary by gender, race, and region",
		MaleOptions: []Option{
			{Label: "Any income", Value: AnyValue, Percentage: 100},
			{Label: "$50k+ per year", Value: "50k", Percentage: 46.3, Description: "~46.3% of US men make $50k+ per year", Source: census},
			{Label: "$75k+ per year", Value: "75k", Percentage: 31.2, Description: "~31.2% of US men make $75k+ per year", Source: census},
			{Label: "$100k+ per year", Value: "100k", Percentage: 17.8, Description: "~17.8% of US men make $100k+ per year", Source: census},
			{Label: "$150k+ per year", Value: "150k", Percentage: 8.9, Description: "~8.9% of US men make $150k+ per year", Source: census},
			{Label: "$200k+ per year", Value: "200k", Percentage: 5.2, Description: "~5.2% of US men make $200k+ per year", Source: census},
			{Label: "$300k+ per year", Value: "300k", Percentage: 2.1, Description: "~2.1% of US men make $300k+ per year", Source: census},
			{Label: "$500k+ per year", Value: "500k", Percentage: 0.7, Description: "~0.7% of US men make $500k+ per year", Source: census},
		},
		FemaleOptions: []Option{
			{Label: "Any income", Value: AnyValue, Percentage: 100},
			{Label: "$50k+ per year", Value: "50k", Percentage: 32.6, Description: "~32.6% of US women make $50k+ per year", Source: census},
			{Label: "$75k+ per year", Value: "75k", Percentage: 18.9, Description: "~18.9% of US women make $75k+ per year", Source: census},
			{Label: "$100k+ per year", Value: "100k", Percentage: 8.7, Description: "~8.7% of US women make $100k+ per year", Source: census},
			{Label: "$150k+ per year", Value: "150k", Percentage: 4.3, Description: "~4.3% of US women make $150k+ per year", Source: census},
			{Label: "$200k+ per year", Value: "200k", Percentage: 2.1, Description: "~2.1% of US women make $200k+ per year", Source: census},
			{Label: "$300k+ per year", Value: "300k", Percentage: 0.8, Description: "~0.8% of US women make $300k+ per year", Source: census},
			{Label: "$500k+ per year", Value: "500k", Percentage: 0.3, Description: "~0.3% of US women make $500k+ per year", Source: census},
		},
	},
	{
		Name:        EducationCriterion,
		Description: "Education levels vary by gender, race, and region",
		MaleOptions: []Option{
			{Label: "Any education", Value: AnyValue, Percentage: 100},
			{Label: "College degree", Value: "college", Percentage: 38.2, Description: "~38.2% of US men have completed college", Source: census},
			{Label: "Bachelor's degree", Value: "bachelors", Percentage: 33.1, Description: "~33.1% of US men have a bachelor's degree", Source: census},
			{Label: "Master's degree", Value: "masters", Percentage: 13.8, Description: "~13.8% of US men have a master's degree", Source: census},
			{Label: "Doctorate/Professional", Value: "doctorate", Percentage: 4.6, Description: "~4.6% of US men have a doctorate or professional degree", Source: census},
		},
		FemaleOptions: []Option{
			{Label: "Any education", Value: AnyValue, Percentage: 100},
			{Label: "College degree", Value: "college", Percentage: 42.3, Description: "~42.3% of US women have completed college", Source: census},
			{Label: "Bachelor's degree", Value: "bachelors", Percentage: 37.1, Description: "~37.1% of US women have a bachelor's degree", Source: census},
			{Label: "Master's degree", Value: "masters", Percentage: 15.6, Description: "~15.6% of US women have a master's degree", Source: census},
			{Label: "Doctorate/Professional", Value: "doctorate", Percentage: 4.2, Description: "~4.2% of US women have a doctorate or professional degree", Source: census},
		},
	},
	{
		Name:        BodyTypeCriterion,
		Description: "Body type distributions vary by gender, age, and ethnicity",
		MaleOptions: []Option{
			{Label: "Any body type", Value: AnyValue, Percentage: 100},
			{Label: "Average weight", Value: "average", Percentage: 28.7, Description: "~28.7% of US men are normal/average weight", Source: cdc},
			{Label: "Athletic/Fit", Value: "athletic", Percentage: 19.2, Description: "~19.2% of US men maintain an athletic/fit physique", Source: "Multiple fitness studies, 2023"},
			{Label: "Very Athletic/Muscular", Value: "very-athletic", Percentage: 4.3, Description: "Only ~4.3% of US men have very athletic/muscular builds", Source: "Fitness industry data, 2023"},
		},
		FemaleOptions: []Option{
			{Label: "Any body type", Value: AnyValue, Percentage: 100},
			{Label: "Average weight", Value: "average", Percentage: 32.8, Description: "~32.8% of US women are normal/average weight", Source: cdc},
			{Label: "Athletic/Fit", Value: "athletic", Percentage: 15.3, Description: "~15.3% of US women maintain an athletic/fit physique", Source: "Multiple fitness studies, 2023"},
			{Label: "Very Athletic/Toned", Value: "very-athletic", Percentage: 3.2, Description: "Only ~3.2% of US women have very athletic/toned physiques", Source: "Fitness industry data, 2023"},
		},
	},
	{
		Name:        "Age",
		Description: "Age distributions vary by region",
		Options: []Option{
			{Label: "Any adult age", Value: AnyValue, Percentage: 100},
			{Label: "18-25", Value: "18-25", Percentage: 11.8, Description: "~11.8% of US adults are 18-25", Source: census},
			{Label: "25-35", Value: "25-35", Percentage: 17.9, Description: "~17.9% of US adults are 25-35", Source: census},
			{Label: "35-45", Value: "35-45", Percentage: 16.6, Description: "~16.6% of US adults are 35-45", Source: census},
			{Label: "45-55", Value: "45-55", Percentage: 15.3, Description: "~15.3% of US adults are 45-55", Source: census},
			{Label: "55-65", Value: "55-65", Percentage: 16.4, Description: "~16.4% of US adults are 55-65", Source: census},
			{Label: "65+", Value: "65+", Percentage: 22.0, Description: "~22.0% of US adults are 65+", Source: census},
		},
	},
	{
		Name:        "Relationship History",
		Description: "Relationship history varies by age and region",
		Options: []Option{
			{Label: "Any relationship history", Value: AnyValue, Percentage: 100},
			{Label: "Never married", Value: "never-married", Percentage: 35.2, Description: "~35.2% of US adults have never been married", Source: "Pew Research Center, 2023"},
			{Label: "No children", Value: "no-children", Percentage: 41.5, Description: "~41.5% of US adults do not have children", Source: census},
			{Label: "Never married & no children", Value: "never-married-no-children", Percentage: 27.9, Description: "~27.9% of US adults have never married and have no children", Source: "Calculated from Census data, 2023"},
		},
	},
	{
		Name:        "Religion",
		Description: "Religious affiliations vary significantly by region",
		Options: []Option{
			{Label: "Any religious affiliation", Value: AnyValue, Percentage: 100},
			{Label: "Christian", Value: "christian", Percentage: 63, Description: "~63% of US adults identify as Christian", Source: pew},
			{Label: "Protestant", Value: "protestant", Percentage: 40, Description: "~40% of US adults identify as Protestant", Source: pew},
			{Label: "Catholic", Value: "catholic", Percentage: 20, Description: "~20% of US adults identify as Catholic", Source: pew},
			{Label: "Jewish", Value: "jewish", Percentage: 2.4, Description: "~2.4% of US adults identify as Jewish", Source: pew},
			{Label: "Muslim", Value: "muslim", Percentage: 1.1, Description: "~1.1% of US adults identify as Muslim", Source: pew},
			{Label: "Buddhist/Hindu", Value: "buddhist-hindu", Percentage: 1.8, Description: "~1.8% of US adults identify as Buddhist or Hindu", Source: pew},
			{Label: "Atheist/Agnostic", Value: "atheist-agnostic", Percentage: 10.1, Description: "~10.1% of US adults identify as Atheist or Agnostic", Source: pew},
			{Label: "Non-religious", Value: "non-religious", Percentage: 29, Description: "~29% of US adults have no religious affiliation", Source: pew},
		},
	},
	{
		Name:        "Political Views",
		Description: "Political views vary by region and demographic",
		Options: []Option{
			{Label: "Any political view", Value: AnyValue, Percentage: 100},
			{Label: "Liberal/Progressive", Value: "liberal", Percentage: 25.8, Description: "~25.8% of US adults identify as liberal/progressive", Source: gallup},
			{Label: "Moderate", Value: "moderate", Percentage: 36.4, Description: "~36.4% of US adults identify as politically moderate", Source: gallup},
			{Label: "Conservative", Value: "conservative", Percentage: 34.1, Description: "~34.1% of US adults identify as conservative", Source: gallup},
			{Label: "Very Liberal", Value: "very-liberal", Percentage: 9.4, Description: "~9.4% of US adults identify as very liberal", Source: gallup},
			{Label: "Very Conservative", Value: "very-conservative", Percentage: 12.6, Description: "~12.6% of US adults identify as very conservative", Source: gallup},
		},
	},
	{
		Name:        "Location Type",
		Description: "Urban/rural distributions vary by region",
		Options: []Option{
			{Label: "Any location type", Value: AnyValue, Percentage: 100},
			{Label: "Urban", Value: "urban", Percentage: 31.8, Description: "~31.8% of US adults live in urban areas", Source: census},
			{Label: "Suburban", Value: "suburban", Percentage: 51.4, Description: "~51.4% of US adults live in suburban areas", Source: census},
			{Label: "Rural", Value: "rural", Percentage: 16.8, Description: "~16.8% of US adults live in rural areas", Source: census},
		},
	},
}
