package trademark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzySimilarity_IdenticalNames(t *testing.T) {
	t.Parallel()

	s := FuzzySimilarity("Apple Inc.", "apple inc")
	assert.Equal(t, 100.0, s.Levenshtein)
	assert.Equal(t, 100.0, s.Ratio)
	assert.Equal(t, 100.0, s.PartialRatio)
	assert.Equal(t, 100.0, s.TokenSort)
	assert.Equal(t, 100.0, s.AvgFuzzy)
}

func TestFuzzySimilarity_SingleSubstitution(t *testing.T) {
	t.Parallel()

	// "microsoft" vs "microsofy": edit distance 1 over length 9.
	s := FuzzySimilarity("Microsoft", "Microsofy")
	assert.InDelta(t, 88.89, s.Levenshtein, 0.01)
	assert.InDelta(t, 89, s.Ratio, 1)
	assert.InDelta(t, 89, s.PartialRatio, 1)
	assert.InDelta(t, 89, s.TokenSort, 1)
	assert.Greater(t, s.AvgFuzzy, 80.0)
}

func TestFuzzySimilarity_WordOrderIrrelevantForTokenSort(t *testing.T) {
	t.Parallel()

	s := FuzzySimilarity("Acme Corp", "Corp Acme")
	assert.Equal(t, 100.0, s.TokenSort)
	assert.Less(t, s.Ratio, 100.0)
}

func TestFuzzySimilarity_SubstringScoresFullPartialRatio(t *testing.T) {
	t.Parallel()

	s := FuzzySimilarity("Apple", "Apple Incorporated")
	assert.Equal(t, 100.0, s.PartialRatio)
	assert.Less(t, s.Ratio, 100.0)
}

func TestFuzzySimilarity_EmptyInputs(t *testing.T) {
	t.Parallel()

	zero := FuzzyScore{}
	assert.Equal(t, zero, FuzzySimilarity("", "Apple"))
	assert.Equal(t, zero, FuzzySimilarity("Apple", ""))
	assert.Equal(t, zero, FuzzySimilarity("", ""))
	assert.Equal(t, zero, FuzzySimilarity("---", "Apple"))
}

func TestFuzzySimilarity_SubScoresWithinRange(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"Apple", "Aple"},
		{"TechCorp", "TechCorporation"},
		{"Google", "Apple"},
		{"A", "completely different name"},
	}
	for _, p := range pairs {
		s := FuzzySimilarity(p[0], p[1])
		for name, v := range map[string]float64{
			"levenshtein":   s.Levenshtein,
			"ratio":         s.Ratio,
			"partial_ratio": s.PartialRatio,
			"token_sort":    s.TokenSort,
			"avg":           s.AvgFuzzy,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s for %v", name, p)
			assert.LessOrEqual(t, v, 100.0, "%s for %v", name, p)
		}
		assert.InDelta(t, (s.Levenshtein+s.Ratio+s.PartialRatio+s.TokenSort)/4, s.AvgFuzzy, 1e-9)
	}
}
