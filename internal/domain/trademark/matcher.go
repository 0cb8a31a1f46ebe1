package trademark

import "sort"

// DefaultThreshold is the minimum max_similarity_score a stored record needs
// to be kept as a match when the caller does not supply a threshold.
const DefaultThreshold = 50.0

// Similarity types describing which comparison produced a candidate's top
// score.
const (
	// SimilarityTypeApplicant: the applicant-name comparison scored strictly
	// higher than the trademark-text comparison.
	SimilarityTypeApplicant = "applicant"

	// SimilarityTypeTrademark: the trademark-text comparison scored at least
	// as high as the applicant-name comparison.  Ties resolve here on
	// purpose; downstream consumers depend on this tie-break.
	SimilarityTypeTrademark = "trademark"

	// SimilarityTypeApplicantName: the stored record had no trademark text,
	// so both comparisons were effectively against the applicant name.
	SimilarityTypeApplicantName = "applicant_name"
)

// MatchCandidate is one stored record scored against a new record.
type MatchCandidate struct {
	Record         Record         `json:"existing_trademark"`
	NameSimilarity PairSimilarity `json:"name_similarity"`
	LogoSimilarity PairSimilarity `json:"logo_similarity"`
	MaxScore       float64        `json:"max_similarity_score"`
	SimilarityType string         `json:"similarity_type"`
	FallbackUsed   bool           `json:"fallback_used"`
}

// compareRecords scores one stored record against the new record's resolved
// fields.
func compareRecords(newName, newTrademark string, stored Record) MatchCandidate {
	storedName := ResolveStoredName(stored)
	storedTrademark, fallback := ResolveStoredTrademark(stored)

	name := ScorePair(newName, storedName)
	logo := ScorePair(newTrademark, storedTrademark)

	max := name.Overall
	if logo.Overall > max {
		max = logo.Overall
	}

	simType := SimilarityTypeTrademark
	switch {
	case fallback:
		simType = SimilarityTypeApplicantName
	case name.Overall > logo.Overall:
		simType = SimilarityTypeApplicant
	}

	return MatchCandidate{
		Record:         stored,
		NameSimilarity: name,
		LogoSimilarity: logo,
		MaxScore:       max,
		SimilarityType: simType,
		FallbackUsed:   fallback,
	}
}

// FindMatches scores every stored record against newRec and returns the
// candidates whose MaxScore meets threshold, sorted by MaxScore descending.
// The sort is stable: ties keep their original corpus order.  An empty corpus
// yields an empty (non-nil) slice.
func FindMatches(newRec Record, corpus []Record, threshold float64) []MatchCandidate {
	newName := ResolveNewName(newRec)
	newTrademark := ResolveNewTrademark(newRec)

	matches := make([]MatchCandidate, 0)
	for _, stored := range corpus {
		c := compareRecords(newName, newTrademark, stored)
		if c.MaxScore >= threshold {
			matches = append(matches, c)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MaxScore > matches[j].MaxScore
	})
	return matches
}
