package trademark

// Score-fusion weights.  Phonetic agreement is binary-ish (0/50/100 after
// scaling) and acts as a coarse boost; the fuzzy score dominates because it
// is continuous and more discriminating.  The weights are fixed for every
// comparison; they are named constants so a future version can expose them.
const (
	PhoneticWeight = 0.3
	FuzzyWeight    = 0.7
)

// PairSimilarity is the fusion of one PhoneticScore and one FuzzyScore for a
// single name pair.
//
// Overall is not clamped: with sub-scores produced by differing library
// roundings the fusion formula can exceed 100 by a fraction of a point.
// Downstream consumers rank and threshold on the raw value, so the engine
// reports it unmodified.
type PairSimilarity struct {
	Phonetic PhoneticScore `json:"phonetic"`
	Fuzzy    FuzzyScore    `json:"fuzzy"`
	Overall  float64       `json:"overall_similarity"`
}

// ScorePair computes the full similarity of two raw names: phonetic and fuzzy
// sub-scores over their normalized forms, fused into one overall score in
// roughly [0,100].
//
//	overall = avgPhonetic × PhoneticWeight × 100 + avgFuzzy × FuzzyWeight
//
// ScorePair is stateless and pure; empty names on either side yield the
// all-zero result.
func ScorePair(name1, name2 string) PairSimilarity {
	p := PhoneticSimilarity(name1, name2)
	f := FuzzySimilarity(name1, name2)
	return PairSimilarity{
		Phonetic: p,
		Fuzzy:    f,
		Overall:  p.AvgPhonetic*PhoneticWeight*100 + f.AvgFuzzy*FuzzyWeight,
	}
}
