package trademark

import (
	"github.com/agnivade/levenshtein"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// FuzzyScore holds the four edit-distance-family similarity measures, each in
// [0,100], and their mean.
type FuzzyScore struct {
	Levenshtein  float64 `json:"levenshtein"`
	Ratio        float64 `json:"fuzzy_ratio"`
	PartialRatio float64 `json:"partial_ratio"`
	TokenSort    float64 `json:"token_sort"`
	AvgFuzzy     float64 `json:"avg_fuzzy"`
}

// FuzzySimilarity compares two raw names with four edit-distance-family
// measures over their normalized forms:
//
//   - Levenshtein similarity: (1 - distance/maxLen) × 100
//   - ratio: global alignment similarity
//   - partial ratio: best-matching-substring similarity
//   - token sort ratio: ratio over lexicographically sorted tokens, making
//     word order irrelevant
//
// When either name is empty, before or after normalization, the all-zero
// score is returned.
func FuzzySimilarity(name1, name2 string) FuzzyScore {
	if name1 == "" || name2 == "" {
		return FuzzyScore{}
	}
	n1, n2 := Normalize(name1), Normalize(name2)
	if n1 == "" || n2 == "" {
		return FuzzyScore{}
	}

	var s FuzzyScore

	dist := levenshtein.ComputeDistance(n1, n2)
	maxLen := len([]rune(n1))
	if l := len([]rune(n2)); l > maxLen {
		maxLen = l
	}
	s.Levenshtein = (1 - float64(dist)/float64(maxLen)) * 100

	s.Ratio = float64(fuzzy.Ratio(n1, n2))
	s.PartialRatio = float64(fuzzy.PartialRatio(n1, n2))
	s.TokenSort = float64(fuzzy.TokenSortRatio(n1, n2))

	s.AvgFuzzy = (s.Levenshtein + s.Ratio + s.PartialRatio + s.TokenSort) / 4
	return s
}
