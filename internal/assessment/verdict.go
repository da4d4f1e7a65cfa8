package assessment

import (
	"strings"

	"github.com/denisok6893-rgb/red-flag-checker/internal/domain"
)

type RelationshipVerdict struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Emoji       string `json:"emoji"`
}

// Verdict summarizes a net score.
func Verdict(netScore int) RelationshipVerdict {
	switch {
	case netScore >= 70:
		return RelationshipVerdict{"Exceptional Match", "This relationship shows many healthy traits and few concerns. The positives significantly outweigh any issues.", "text-green-500", "💚"}
	case netScore >= 40:
		return RelationshipVerdict{"Very Promising", "This relationship has strong potential with many more positives than negatives. Any issues appear manageable.", "text-green-400", "✨"}
	case netScore >= 10:
		return RelationshipVerdict{"Generally Positive", "The relationship has more strengths than weaknesses, though there are some areas that could use attention.", "text-green-300", "👍"}
	case netScore >= -10:
		return RelationshipVerdict{"Mixed Signals", "This relationship has roughly equal positive and concerning elements. Consider whether the issues can be addressed.", "text-yellow-400", "⚖️"}
	case netScore >= -40:
		return RelationshipVerdict{"Concerning Imbalance", "The negatives outweigh the positives. Reflect on whether these issues can realistically be improved.", "text-orange-400", "⚠️"}
	case netScore >= -70:
		return RelationshipVerdict{"Seriously Problematic", "This relationship shows multiple serious concerns with few redeeming qualities. Consider if this is healthy for you.", "text-red-400", "🚩"}
	default:
		return RelationshipVerdict{"Run, Don't Walk", "The negative aspects of this relationship dramatically outweigh any positives. This shows signs of a toxic situation.", "text-red-500", "🏃"}
	}
}

func CompatibilityDescription(netScore int) string {
	switch {
	case netScore >= 70:
		return "You two are like avocado and toast - naturally perfect together."
	case netScore >= 40:
		return "Like coffee and cream - better together than apart."
	case netScore >= 10:
		return "Like pizza with pineapple - controversial but works for some people."
	case netScore >= -10:
		return "Like oil and vinegar - can blend temporarily but naturally separate."
	case netScore >= -40:
		return "Like orange juice after brushing your teeth - technically possible but why would you?"
	case netScore >= -70:
		return "Like a fish and a bicycle - one of you might be in the wrong environment."
	default:
		return "Like a cat in a bathtub - fundamentally incompatible and someone's getting hurt."
	}
}

// Advice returns plain-language suggestions for a net score. Critical
// concerns are very_negative ratings on traits weighted 50 or more.
func (e *Engine) Advice(netScore int, selections domain.Selections) []string {
	var concerns, strengths []string
	for _, cat := range e.catalog {
		for _, t := range cat.Traits {
			switch selections[TraitID(cat.Name, t.Trait)] {
			case domain.VeryNegative:
				if t.NegativeWeight >= 50 {
					concerns = append(concerns, t.Negative)
				}
			case domain.VeryPositive:
				if t.PositiveWeight >= 40 {
					strengths = append(strengths, t.Positive)
				}
			}
		}
	}

	var advice []string
	switch {
	case netScore >= 40:
		advice = append(advice,
			"Continue nurturing the positive aspects of your relationship that are working well.",
			"Remember that even good relationships require ongoing effort and communication.")
	case netScore >= 0:
		advice = append(advice,
			"Focus on strengthening the positive elements while addressing the concerning behaviors.",
			"Have honest conversations about the areas of concern in a non-confrontational way.")
	case netScore >= -40:
		advice = append(advice,
			"Consider whether the concerning behaviors are dealbreakers or issues that can be addressed.",
			"Set clear boundaries around behaviors that you find problematic.",
			"Think about whether this relationship is meeting your core needs and values.")
	default:
		advice = append(advice,
			"Prioritize your wellbeing and safety when considering next steps.",
			"Reach out to trusted friends or family for support and perspective.",
			"Consider speaking with a professional therapist or counselor about your situation.")
	}

	if anyContains(concerns, "physical", "force", "isolates") {
		advice = append(advice, "Some of these behaviors (like physical intimidation or isolation) are serious warning signs that should not be ignored.")
	}
	if anyContains(concerns, "cheated", "lies") {
		advice = append(advice, "Issues with honesty and trust are foundational problems that are very difficult to rebuild once broken.")
	}
	if len(strengths) > 0 && netScore < 0 {
		advice = append(advice, "Despite the concerns, there are meaningful strengths in this relationship that could serve as a foundation for improvement.")
	}
	return advice
}

// anyContains is case-sensitive, matching how the descriptions are worded.
func anyContains(items []string, words ...string) bool {
	for _, it := range items {
		for _, w := range words {
			if strings.Contains(it, w) {
				return true
			}
		}
	}
	return false
}

type SatiricalVerdict struct {
	Title  string   `json:"title"`
	Advice string   `json:"advice"`
	Tips   []string `json:"tips"`
	Icon   string   `json:"icon"`
}

func SatiricalAdvice(netScore int) SatiricalVerdict {
	switch {
	case netScore >= 50:
		return SatiricalVerdict{
			Title:  "Immediate Action Required",
			Advice: "Our analysis indicates your partner is far too stable and supportive. This level of emotional well-being is concerning - you might develop healthy self-esteem and realistic expectations! We recommend immediately sabotaging this relationship and finding someone who treats you worse.",
			Tips: []string{
				"Try picking fights over completely trivial matters",
				"Mention how your ex did everything better",
				"Develop an inexplicable new pet peeve about something they can't change",
				"Start responding to texts with increasing delay until you're ghosting them",
			},
			Icon: "🚩",
		}
	case netScore > 0:
		return SatiricalVerdict{
			Title:  "Caution: Healthy Relationship Detected",
			Advice: "Your relationship shows concerning signs of mutual respect and communication. How boring! Where's the drama? The tears? The 3 AM crying sessions? We recommend introducing some chaos before you settle into a lifetime of stable happiness.",
			Tips: []string{
				"Start being vague about your whereabouts for no reason",
				"Randomly cancel plans last minute with increasingly bizarre excuses",
				"Start ghosting them for a few days at a time",
				"Start causing drama with their friends and family",
				"Make sure to always be the victim in every situation",
			},
			Icon: "⚠️",
		}
	case netScore > -50:
		return SatiricalVerdict{
			Title:  "Promising Toxic Potential",
			Advice: "Your relationship shows some red flags, but not nearly enough!",
			Tips: []string{
				"Start keeping score of every minor disagreement",
				"When they apologize, say \"it's fine\" then bring it up 6 months later",
				"Dramatically misinterpret their text messages whenever possible",
			},
			Icon: "👍",
		}
	default:
		return SatiricalVerdict{
			Title:  "Jackpot! Keeper Alert!",
			Advice: "Congratulations! You've found someone truly toxic. This relationship has excellent potential for destroying your mental health, and creating trauma that will take years of therapy to undo. We highly recommend escalating your commitment ASAP.",
			Tips: []string{
				"Consider a spontaneous Las Vegas wedding",
				"Combine all your finances immediately",
				"Ignore friends and family who express concern - they're just jealous",
				"The more red flags, the more passionate the relationship!",
			},
			Icon: "💯",
		}
	}
}
