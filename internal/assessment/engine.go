package assessment

import (
	"math"
	"strings"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

// partialFactor dampens the "sometimes"/"usually" ratings.
const partialFactor = 0.7

type Engine struct {
	catalog Catalog
}

func NewEngine(c Catalog) *Engine {
	return &Engine{catalog: c.Clone()}
}

// Catalog returns a copy of the catalog the engine scores against.
func (e *Engine) Catalog() Catalog {
	return e.catalog.Clone()
}

// WithCustom returns an engine that also scores the given user-added traits.
func (e *Engine) WithCustom(custom map[string][]domain.CustomTrait) *Engine {
	return &Engine{catalog: e.catalog.WithCustom(custom)}
}

// ComputeScore aggregates red and green weights for every rated trait.
// Unknown ids and unknown levels are treated as not rated.
func (e *Engine) ComputeScore(selections domain.Selections) domain.ScoreResult {
	var red, green int
	redTraits := []domain.TraitSelection{}
	greenTraits := []domain.TraitSelection{}

	for _, cat := range e.catalog {
		for _, t := range cat.Traits {
			id := TraitID(cat.Name, t.Trait)
			level, ok := selections[id]
			if !ok {
				continue
			}
			switch level {
			case domain.VeryNegative, domain.Negative:
				red -= SelectionImpact(t, level)
				redTraits = append(redTraits, domain.TraitSelection{ID: id, Value: level})
			case domain.Positive, domain.VeryPositive:
				green += SelectionImpact(t, level)
				greenTraits = append(greenTraits, domain.TraitSelection{ID: id, Value: level})
			}
		}
	}

	red = min(red, 100)
	green = min(green, 100)

	return domain.ScoreResult{
		RedScore:    red,
		GreenScore:  green,
		NetScore:    clamp(green-red, -100, 100),
		RedTraits:   redTraits,
		GreenTraits: greenTraits,
	}
}

// SelectionImpact is the signed contribution of a rating: negative for red
// flags, positive for green flags, zero otherwise.
func SelectionImpact(t domain.TraitDefinition, level domain.Level) int {
	switch level {
	case domain.VeryNegative:
		return -t.NegativeWeight
	case domain.Negative:
		return -dampen(t.NegativeWeight)
	case domain.Positive:
		return dampen(t.PositiveWeight)
	case domain.VeryPositive:
		return t.PositiveWeight
	}
	return 0
}

func dampen(weight int) int {
	return int(math.Round(float64(weight) * partialFactor))
}

type TraitOption struct {
	Value  domain.Level `json:"value"`
	Label  string       `json:"label"`
	Impact int          `json:"impact"`
}

// TraitOptions returns the five selectable ratings for a trait with their
// display labels and previewed impact.
func TraitOptions(t domain.TraitDefinition) []TraitOption {
	labels := map[domain.Level]string{
		domain.VeryNegative: t.Negative,
		domain.Negative:     "Sometimes " + strings.ToLower(t.Negative),
		domain.Neutral:      "Neutral or mixed",
		domain.Positive:     "Usually " + strings.ToLower(t.Positive),
		domain.VeryPositive: t.Positive,
	}
	out := make([]TraitOption, 0, len(domain.Levels))
	for _, level := range domain.Levels {
		out = append(out, TraitOption{
			Value:  level,
			Label:  labels[level],
			Impact: SelectionImpact(t, level),
		})
	}
	return out
}

// IsCritical marks traits whose worst rating alone lands in the Moderate tier.
func IsCritical(t domain.TraitDefinition) bool {
	return t.NegativeWeight >= 50
}

var levelLabels = map[domain.Level]string{
	domain.VeryNegative: "Very Concerning",
	domain.Negative:     "Concerning",
	domain.Neutral:      "Neutral",
	domain.Positive:     "Positive",
	domain.VeryPositive: "Very Positive",
}

// LevelLabel returns the display name of a rating, or "Not rated".
func LevelLabel(level domain.Level) string {
	if l, ok := levelLabels[level]; ok {
		return l
	}
	return "Not rated"
}

// ParseLevel accepts a rating value in any letter case.
func ParseLevel(s string) (domain.Level, bool) {
	l := domain.Level(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Valid()
}

type ProgressReport struct {
	Rated   int `json:"rated"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Progress counts how many catalog traits carry a rating.
func (e *Engine) Progress(selections domain.Selections) ProgressReport {
	total := e.catalog.Count()
	rated := 0
	for _, cat := range e.catalog {
		for _, t := range cat.Traits {
			if _, ok := selections[TraitID(cat.Name, t.Trait)]; ok {
				rated++
			}
		}
	}
	p := ProgressReport{Rated: rated, Total: total}
	if total > 0 {
		p.Percent = int(math.Round(float64(rated) / float64(total) * 100))
	}
	return p
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
