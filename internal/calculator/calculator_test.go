package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSelect(t *testing.T, lookingForMale bool, values map[string]string) Criteria {
	t.Helper()
	cs, err := DefaultCriteria(lookingForMale).SelectAll(values)
	require.NoError(t, err)
	return cs
}

func TestCompute_NothingSelected(t *testing.T) {
	got := Compute(DefaultCriteria(true), true, "us")

	assert.Equal(t, 49.0, got.Probability)
	assert.Equal(t, ConfidenceHigh, got.ConfidenceLevel)
	assert.Equal(t, "REALISTIC", got.Delusion)
	assert.Equal(t, "", got.TopPercentile)
	assert.Equal(t, 0, got.FactorCount)
	assert.InDelta(t, 0.1, got.MarginOfError, 1e-12)
	assert.InDelta(t, 333.3*0.76*1e6, got.AdultPopulation, 1)
	assert.InDelta(t, 0.49*333.3*0.76*1e6, got.PeopleCount, 1)
	assert.InEpsilon(t, 0.49*333.3*0.76*1e6*0.47, got.RealDatingPoolSize, 1e-9)

	female := Compute(DefaultCriteria(false), false, "us")
	assert.Equal(t, 51.0, female.Probability)
}

func TestCompute_AnyIsNoOp(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{RaceCriterion: AnyValue, "Hair Color": AnyValue})

	got := Compute(cs, true, "us")

	assert.Equal(t, 49.0, got.Probability)
	assert.Equal(t, 0, got.FactorCount)
}

func TestCompute_RaceCorrelation(t *testing.T) {
	white := Compute(mustSelect(t, true, map[string]string{RaceCriterion: "white", "Hair Color": "blonde"}), true, "us")
	black := Compute(mustSelect(t, true, map[string]string{RaceCriterion: "black", "Hair Color": "blonde"}), true, "us")

	assert.Greater(t, white.Probability, black.Probability)
	assert.InDelta(t, 49*0.578*0.131*1.8, white.Probability, 1e-9)
	assert.InDelta(t, 49*0.141*0.131*0.01, black.Probability, 1e-9)
	assert.Equal(t, 2, white.FactorCount)
}

func TestCompute_OrderIndependent(t *testing.T) {
	values := map[string]string{
		"Hair Color":      "blonde",
		HeightCriterion:   "6-0",
		RaceCriterion:     "asian",
		"Eye Color":       "blue",
		BodyTypeCriterion: "very-athletic",
	}
	cs := mustSelect(t, true, values)
	want := Compute(cs, true, "western-europe")

	reversed := make(Criteria, len(cs))
	for i, c := range cs {
		reversed[len(cs)-1-i] = c
	}
	rotated := append(cs[5:].Clone(), cs[:5].Clone()...)

	for _, perm := range []Criteria{reversed, rotated} {
		got := Compute(perm, true, "western-europe")
		assert.InEpsilon(t, want.Probability, got.Probability, 1e-12)
		assert.Equal(t, want.ConfidenceLevel, got.ConfidenceLevel)
		assert.Equal(t, want.FactorCount, got.FactorCount)
	}
}

func TestCompute_RegionAdjustmentCapsConfidence(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{"Eye Color": "blue"})

	got := Compute(cs, true, "global")

	assert.InDelta(t, 49*0.252*0.28, got.Probability, 1e-9)
	assert.Equal(t, ConfidenceLow, got.ConfidenceLevel)
	assert.InEpsilon(t, 8000*0.76*1e6*got.Probability/100*0.42, got.RealDatingPoolSize, 1e-9)
}

func TestCompute_RegionCapSurvivesFactorCount(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{
		"Eye Color":     "blue",
		"Age":           "25-35",
		"Location Type": "urban",
		"Religion":      "christian",
	})

	got := Compute(cs, true, "global")

	assert.Equal(t, 4, got.FactorCount)
	assert.Equal(t, ConfidenceLow, got.ConfidenceLevel)
}

func TestCompute_UnadjustedTraitKeepsConfidence(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{"Age": "25-35"})

	got := Compute(cs, true, "africa")

	assert.Equal(t, ConfidenceHigh, got.ConfidenceLevel)
	assert.InDelta(t, 49*0.179, got.Probability, 1e-9)
}

func TestCompute_FemaleHeightUsesFemaleRegionKey(t *testing.T) {
	cs := mustSelect(t, false, map[string]string{HeightCriterion: "5-8"})

	got := Compute(cs, false, "global")

	assert.InDelta(t, 51*0.102*0.5, got.Probability, 1e-9)
}

func TestCompute_FactorCountConfidence(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{
		RaceCriterion:   "white",
		"Eye Color":     "brown",
		"Age":           "25-35",
		"Location Type": "urban",
	})

	got := Compute(cs, true, "us")

	assert.Equal(t, ConfidenceModerate, got.ConfidenceLevel)
}

func TestCompute_CrossTraitCorrection(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{"Hair Color": "blonde", "Eye Color": "blue"})

	got := Compute(cs, true, "us")

	assert.InDelta(t, 49*0.131*0.252*3.7, got.Probability, 1e-9)
}

func TestCompute_VeryRareIsVeryLowConfidence(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{
		RaceCriterion:   "asian",
		"Hair Color":    "red",
		HeightCriterion: "6-5",
	})

	got := Compute(cs, true, "us")

	assert.Less(t, got.Probability, 0.001)
	assert.Equal(t, ConfidenceVeryLow, got.ConfidenceLevel)
	assert.NotEmpty(t, got.TopPercentile)
}

func TestCompute_UnknownRegionFallsBack(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{"Eye Color": "blue"})

	assert.Equal(t, Compute(cs, true, "us"), Compute(cs, true, "atlantis"))
}

func TestWithGender_ResetsOnlyGenderSpecific(t *testing.T) {
	cs := mustSelect(t, true, map[string]string{
		RaceCriterion:      "white",
		HeightCriterion:    "6-0",
		IncomeCriterion:    "100k",
		EducationCriterion: "masters",
		"Eye Color":        "blue",
	})

	switched := cs.WithGender(false)

	sel := switched.Selections()
	assert.Equal(t, map[string]string{RaceCriterion: "white", "Eye Color": "blue"}, sel)
	h, ok := switched.Get(HeightCriterion)
	require.True(t, ok)
	assert.Equal(t, "5-4", h.Options[1].Value)

	orig, _ := cs.Get(HeightCriterion)
	assert.Equal(t, "6-0", orig.Selected)
}

func TestSelect_Validation(t *testing.T) {
	cs := DefaultCriteria(true)

	_, err := cs.Select("Shoe Size", "12")
	assert.ErrorIs(t, err, ErrUnknownCriterion)

	_, err = cs.Select(HeightCriterion, "5-4")
	assert.ErrorIs(t, err, ErrUnknownOption)

	next, err := cs.Select(HeightCriterion, "6-2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{HeightCriterion: "6-2"}, next.Selections())
	assert.Empty(t, cs.Selections())

	assert.Empty(t, next.Reset().Selections())
}

func TestDefaultCriteria(t *testing.T) {
	cs := DefaultCriteria(true)

	require.Len(t, cs, 12)
	assert.Equal(t, RaceCriterion, cs[0].Name)
	for _, c := range cs {
		require.NotEmpty(t, c.Options, c.Name)
		assert.Equal(t, AnyValue, c.Options[0].Value, c.Name)
		for _, o := range c.Options {
			assert.Greater(t, o.Percentage, 0.0)
			assert.LessOrEqual(t, o.Percentage, 100.0)
		}
	}

	cs[0].Options[1].Percentage = 1
	assert.Equal(t, 57.8, DefaultCriteria(true)[0].Options[1].Percentage)
}

func TestKey(t *testing.T) {
	a := mustSelect(t, true, map[string]string{"Eye Color": "blue", HeightCriterion: "6-0"})
	b := mustSelect(t, true, map[string]string{HeightCriterion: "6-0", "Eye Color": "blue", "Age": AnyValue})

	assert.Equal(t, Key(a, true, "us"), Key(b, true, "nowhere"))
	assert.NotEqual(t, Key(a, true, "us"), Key(a, false, "us"))
	assert.Equal(t, "m|us|Eye Color=blue|Height=6-0", Key(a, true, "us"))
}

func TestConfidenceRank(t *testing.T) {
	assert.Less(t, ConfidenceHigh.Rank(), ConfidenceModerate.Rank())
	assert.Less(t, ConfidenceModerate.Rank(), ConfidenceLow.Rank())
	assert.Less(t, ConfidenceLow.Rank(), ConfidenceVeryLow.Rank())
}
