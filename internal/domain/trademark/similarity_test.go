package trademark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePair_IdenticalNamesReachMaximum(t *testing.T) {
	t.Parallel()

	// Full phonetic agreement and all fuzzy sub-scores at 100 fuse to
	// exactly 100: 1.0×0.3×100 + 100×0.7.
	s := ScorePair("Apple", "Apple")
	assert.Equal(t, 1.0, s.Phonetic.AvgPhonetic)
	assert.Equal(t, 100.0, s.Fuzzy.AvgFuzzy)
	assert.Equal(t, 100.0, s.Overall)
}

func TestScorePair_EmptyInputsAreAllZero(t *testing.T) {
	t.Parallel()

	for _, pair := range [][2]string{{"", "anything"}, {"anything", ""}, {"", ""}} {
		s := ScorePair(pair[0], pair[1])
		assert.Equal(t, PairSimilarity{}, s, "pair %v", pair)
	}
}

func TestScorePair_FusionFormulaIsExact(t *testing.T) {
	t.Parallel()

	// With zero phonetic agreement the overall is exactly the weighted
	// fuzzy average.
	s := ScorePair("apple", "zebra")
	assert.Equal(t, 0.0, s.Phonetic.AvgPhonetic)
	assert.InDelta(t, s.Fuzzy.AvgFuzzy*FuzzyWeight, s.Overall, 1e-9)

	// General case: the formula reproduces exactly from the parts.
	s = ScorePair("Microsoft", "Microsofy")
	assert.InDelta(t, s.Phonetic.AvgPhonetic*PhoneticWeight*100+s.Fuzzy.AvgFuzzy*FuzzyWeight, s.Overall, 1e-9)
}

func TestScorePair_Weights(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.3, PhoneticWeight)
	assert.Equal(t, 0.7, FuzzyWeight)
}

func TestScorePair_SingleSubstitutionClassifiesAtLeastMedium(t *testing.T) {
	t.Parallel()

	s := ScorePair("Microsoft", "Microsofy")
	assert.GreaterOrEqual(t, s.Overall, mediumBound)
	level := Classify(s.Overall)
	assert.Contains(t, []string{LevelMedium, LevelHigh}, level)
}
