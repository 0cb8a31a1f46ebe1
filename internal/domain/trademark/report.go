package trademark

import "math"

// Comparison notes attached to each report match.
const (
	noteNormal   = "Normal comparison"
	noteFallback = "Used Client/Applicant name for trademark comparison (Trademark column empty)"
)

// NewTrademarkSummary is the new record's resolved fields as they appear in a
// report.
type NewTrademarkSummary struct {
	Name          string `json:"name"`
	Trademark     string `json:"trademark"`
	ApplicationNo string `json:"application_no"`
	Class         string `json:"class"`
	Status        string `json:"status"`
}

// ScoreBreakdown is the full phonetic + fuzzy decomposition of one name-pair
// comparison, rounded for presentation.
type ScoreBreakdown struct {
	Phonetic PhoneticScore `json:"phonetic"`
	Fuzzy    FuzzyScore    `json:"fuzzy"`
	Overall  float64       `json:"overall_similarity"`
}

// DetailedScores groups the two comparisons behind one candidate.
type DetailedScores struct {
	NameComparison      ScoreBreakdown `json:"name_comparison"`
	TrademarkComparison ScoreBreakdown `json:"trademark_comparison"`
}

// ReportMatch is one kept, classified candidate in a ComparisonReport.
type ReportMatch struct {
	ExistingTrademark Record         `json:"existing_trademark"`
	SimilarityScore   float64        `json:"similarity_score"`
	SimilarityLevel   string         `json:"similarity_level"`
	SimilarityType    string         `json:"similarity_type"`
	FallbackUsed      bool           `json:"fallback_used"`
	ComparisonNote    string         `json:"comparison_note"`
	DetailedScores    DetailedScores `json:"detailed_scores"`
}

// ComparisonReport is the complete, JSON-serializable result of comparing one
// new record against the stored corpus.  Reports are created fresh per
// request and never persisted by the engine.
type ComparisonReport struct {
	NewTrademark  NewTrademarkSummary `json:"new_trademark"`
	TotalExisting int                 `json:"total_existing_trademarks"`
	SimilarFound  int                 `json:"similar_trademarks_found"`
	Threshold     float64             `json:"similarity_threshold"`
	Matches       []ReportMatch       `json:"matches"`
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundBreakdown rounds every derived sub-score; the raw 0/1 phonetic match
// flags are reported unrounded.
func roundBreakdown(p PairSimilarity) ScoreBreakdown {
	return ScoreBreakdown{
		Phonetic: PhoneticScore{
			SoundexMatch:   p.Phonetic.SoundexMatch,
			MetaphoneMatch: p.Phonetic.MetaphoneMatch,
			AvgPhonetic:    round2(p.Phonetic.AvgPhonetic),
		},
		Fuzzy: FuzzyScore{
			Levenshtein:  round2(p.Fuzzy.Levenshtein),
			Ratio:        round2(p.Fuzzy.Ratio),
			PartialRatio: round2(p.Fuzzy.PartialRatio),
			TokenSort:    round2(p.Fuzzy.TokenSort),
			AvgFuzzy:     round2(p.Fuzzy.AvgFuzzy),
		},
		Overall: round2(p.Overall),
	}
}

// BuildReport runs a full comparison pass of newRec against corpus and
// assembles the structured report: the new record's resolved fields, corpus
// statistics, and each kept candidate with its classification and score
// breakdowns.
func BuildReport(newRec Record, corpus []Record, threshold float64) *ComparisonReport {
	candidates := FindMatches(newRec, corpus, threshold)

	matches := make([]ReportMatch, 0, len(candidates))
	for _, c := range candidates {
		note := noteNormal
		if c.FallbackUsed {
			note = noteFallback
		}
		matches = append(matches, ReportMatch{
			ExistingTrademark: c.Record,
			SimilarityScore:   round2(c.MaxScore),
			SimilarityLevel:   Classify(c.MaxScore),
			SimilarityType:    c.SimilarityType,
			FallbackUsed:      c.FallbackUsed,
			ComparisonNote:    note,
			DetailedScores: DetailedScores{
				NameComparison:      roundBreakdown(c.NameSimilarity),
				TrademarkComparison: roundBreakdown(c.LogoSimilarity),
			},
		})
	}

	return &ComparisonReport{
		NewTrademark: NewTrademarkSummary{
			Name:          ResolveNewName(newRec),
			Trademark:     ResolveNewTrademark(newRec),
			ApplicationNo: ResolveNewApplicationNo(newRec),
			Class:         ResolveNewClass(newRec),
			Status:        ResolveNewStatus(newRec),
		},
		TotalExisting: len(corpus),
		SimilarFound:  len(matches),
		Threshold:     threshold,
		Matches:       matches,
	}
}
