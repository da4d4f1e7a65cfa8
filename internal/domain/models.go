package domain

// Level is one of the five ordinal ratings a user can give a trait.
type Level string

const (
	VeryNegative Level = "very_negative"
	Negative     Level = "negative"
	Neutral      Level = "neutral"
	Positive     Level = "positive"
	VeryPositive Level = "very_positive"
)

// Levels lists the ratings from most concerning to most positive.
var Levels = []Level{VeryNegative, Negative, Neutral, Positive, VeryPositive}

// Valid reports whether l is one of the five known ratings.
func (l Level) Valid() bool {
	switch l {
	case VeryNegative, Negative, Neutral, Positive, VeryPositive:
		return true
	}
	return false
}

// Selections maps a trait id to the user's rating.
type Selections map[string]Level

// Clone returns an independent copy; nil stays nil.
func (s Selections) Clone() Selections {
	if s == nil {
		return nil
	}
	out := make(Selections, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

type TraitDefinition struct {
	Trait          string `json:"trait"`
	Negative       string `json:"negative"`
	Positive       string `json:"positive"`
	NegativeWeight int    `json:"negativeWeight"`
	PositiveWeight int    `json:"positiveWeight"`
}

// CustomTrait is a user-added trait. CreatedAt is unix milliseconds.
type CustomTrait struct {
	TraitDefinition
	IsCustom  bool  `json:"isCustom"`
	CreatedAt int64 `json:"createdAt"`
}

type TraitSelection struct {
	ID    string `json:"id"`
	Value Level  `json:"value"`
}

type ScoreResult struct {
	RedScore    int              `json:"redScore"`
	GreenScore  int              `json:"greenScore"`
	NetScore    int              `json:"netScore"`
	RedTraits   []TraitSelection `json:"redTraits"`
	GreenTraits []TraitSelection `json:"greenTraits"`
}
