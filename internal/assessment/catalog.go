package assessment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

// Category groups traits under a display name. Order is significant.
type Category struct {
	Name   string                   `json:"name"`
	Traits []domain.TraitDefinition `json:"traits"`
}

// Catalog is the ordered list of rateable categories.
type Catalog []Category

var whitespaceRun = regexp.MustCompile(`\s+`)

// TraitID builds the join key between the catalog and user selections.
func TraitID(category, trait string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(category+"_"+trait, "_"))
}

var builtinCatalog = Catalog{
	{Name: "Communication", Traits: []domain.TraitDefinition{
		{Trait: "Communication Style", Negative: "Dismisses feelings or concerns", Positive: "Listens actively and validates feelings", NegativeWeight: 35, PositiveWeight: 35},
		{Trait: "Conflict Resolution", Negative: "Uses silent treatment or emotional withdrawal", Positive: "Discusses issues calmly and seeks solutions", NegativeWeight: 30, PositiveWeight: 30},
		{Trait: "Honesty", Negative: "Lies or hides important information", Positive: "Communicates openly and truthfully", NegativeWeight: 50, PositiveWeight: 40},
		{Trait: "Apologies", Negative: "Never apologizes or takes responsibility", Positive: "Admits mistakes and makes genuine apologies", NegativeWeight: 35, PositiveWeight: 35},
	}},
	{Name: "Respect & Boundaries", Traits: []domain.TraitDefinition{
		{Trait: "Personal Boundaries", Negative: "Pushes or ignores your boundaries", Positive: "Respects and upholds your boundaries", NegativeWeight: 60, PositiveWeight: 50},
		{Trait: "Privacy", Negative: "Monitors your communications or location", Positive: "Respects your privacy and personal space", NegativeWeight: 55, PositiveWeight: 40},
		{Trait: "Physical Boundaries", Negative: "Uses physical intimidation or force", Positive: "Is gentle and respects physical boundaries", NegativeWeight: 100, PositiveWeight: 40},
	}},
	{Name: "Independence", Traits: []domain.TraitDefinition{
		{Trait: "Social Connections", Negative: "Isolates you from friends and family", Positive: "Encourages your outside relationships", NegativeWeight: 70, PositiveWeight: 45},
		{Trait: "Jealousy & Control", Negative: "Shows excessive jealousy or controlling behavior", Positive: "Trusts you and supports your independence", NegativeWeight: 55, PositiveWeight: 45},
		{Trait: "Decision Making", Negative: "Makes important decisions without your input", Positive: "Makes decisions together as a team", NegativeWeight: 40, PositiveWeight: 35},
	}},
	{Name: "Emotional Patterns", Traits: []domain.TraitDefinition{
		{Trait: "Anger Management", Negative: "Has explosive reactions to minor issues", Positive: "Manages emotions in healthy ways", NegativeWeight: 50, PositiveWeight: 40},
		{Trait: "Emotional Support", Negative: "Is absent or dismissive during difficult times", Positive: "Provides comfort and support when needed", NegativeWeight: 35, PositiveWeight: 40},
		{Trait: "Mood Stability", Negative: "Has unpredictable mood swings", Positive: "Maintains emotional consistency", NegativeWeight: 30, PositiveWeight: 30},
	}},
	{Name: "Trust", Traits: []domain.TraitDefinition{
		{Trait: "Faithfulness", Negative: "Has cheated or acts suspiciously", Positive: "Is faithful and transparent", NegativeWeight: 65, PositiveWeight: 45},
		{Trait: "Reliability", Negative: "Frequently breaks promises or commitments", Positive: "Keeps promises and follows through", NegativeWeight: 40, PositiveWeight: 40},
		{Trait: "Past Relationships", Negative: "Still overly connected with ex-partners", Positive: "Has healthy boundaries with exes", NegativeWeight: 30, PositiveWeight: 25},
	}},
	{Name: "Lifestyle", Traits: []domain.TraitDefinition{
		{Trait: "Financial Responsibility", Negative: "Is financially irresponsible or secretive", Positive: "Manages money responsibly and transparently", NegativeWeight: 35, PositiveWeight: 30},
		{Trait: "Substance Use", Negative: "Has problematic substance use patterns", Positive: "Has healthy attitudes toward substances", NegativeWeight: 45, PositiveWeight: 30},
		{Trait: "Life Goals", Negative: "Has incompatible or constantly changing goals", Positive: "Shares or supports your key life goals", NegativeWeight: 35, PositiveWeight: 40},
	}},
	{Name: "Character", Traits: []domain.TraitDefinition{
		{Trait: "Treatment of Others", Negative: "Treats service workers or strangers poorly", Positive: "Is kind and respectful to everyone", NegativeWeight: 40, PositiveWeight: 35},
		{Trait: "Friends & Family", Negative: "Is rude to your friends or family", Positive: "Makes genuine effort with your loved ones", NegativeWeight: 35, PositiveWeight: 30},
		{Trait: "Accountability", Negative: "Blames others for their problems", Positive: "Takes responsibility for their actions", NegativeWeight: 40, PositiveWeight: 35},
	}},
}

// DefaultCatalog returns a copy of the built-in trait table.
func DefaultCatalog() Catalog {
	return builtinCatalog.Clone()
}

// Clone deep-copies the catalog so callers never alias each other's slices.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, cat := range c {
		out[i] = Category{
			Name:   cat.Name,
			Traits: append([]domain.TraitDefinition(nil), cat.Traits...),
		}
	}
	return out
}

// Count returns the number of traits across all categories.
func (c Catalog) Count() int {
	n := 0
	for _, cat := range c {
		n += len(cat.Traits)
	}
	return n
}

// CategoryNames returns category names in catalog order.
func (c Catalog) CategoryNames() []string {
	out := make([]string, 0, len(c))
	for _, cat := range c {
		out = append(out, cat.Name)
	}
	return out
}

// HasCategory reports whether name is one of the catalog's categories.
func (c Catalog) HasCategory(name string) bool {
	for _, cat := range c {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// Lookup finds a trait by its id.
func (c Catalog) Lookup(id string) (string, domain.TraitDefinition, bool) {
	for _, cat := range c {
		for _, t := range cat.Traits {
			if TraitID(cat.Name, t.Trait) == id {
				return cat.Name, t, true
			}
		}
	}
	return "", domain.TraitDefinition{}, false
}

// WithCustom returns a new catalog with user-added traits appended to their
// categories. Categories not present in c are appended in name order.
func (c Catalog) WithCustom(custom map[string][]domain.CustomTrait) Catalog {
	out := c.Clone()
	if len(custom) == 0 {
		return out
	}

	index := make(map[string]int, len(out))
	for i, cat := range out {
		index[cat.Name] = i
	}

	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		traits := custom[name]
		if len(traits) == 0 {
			continue
		}
		i, ok := index[name]
		if !ok {
			out = append(out, Category{Name: name})
			i = len(out) - 1
			index[name] = i
		}
		for _, ct := range traits {
			out[i].Traits = append(out[i].Traits, ct.TraitDefinition)
		}
	}
	return out
}
