package client

import (
	"context"
	"net/http"
)

// Record is a trademark record: field name to string value.  Mirrors the
// wire shape the API accepts and returns.
type Record map[string]string

// PhoneticScore is the phonetic part of a pair comparison.
type PhoneticScore struct {
	SoundexMatch   int     `json:"soundex"`
	MetaphoneMatch int     `json:"metaphone"`
	AvgPhonetic    float64 `json:"avg_phonetic"`
}

// FuzzyScore is the fuzzy-measure part of a pair comparison.
type FuzzyScore struct {
	Levenshtein  float64 `json:"levenshtein"`
	Ratio        float64 `json:"fuzzy_ratio"`
	PartialRatio float64 `json:"partial_ratio"`
	TokenSort    float64 `json:"token_sort"`
	AvgFuzzy     float64 `json:"avg_fuzzy"`
}

// PairSimilarity is the full decomposition of one name-pair comparison.
type PairSimilarity struct {
	Phonetic PhoneticScore `json:"phonetic"`
	Fuzzy    FuzzyScore    `json:"fuzzy"`
	Overall  float64       `json:"overall_similarity"`
}

// NewTrademarkSummary is the compared record's resolved fields as echoed in
// a comparison report.
type NewTrademarkSummary struct {
	Name          string `json:"name"`
	Trademark     string `json:"trademark"`
	ApplicationNo string `json:"application_no"`
	Class         string `json:"class"`
	Status        string `json:"status"`
}

// DetailedScores groups the two pair comparisons behind one match.
type DetailedScores struct {
	NameComparison      PairSimilarity `json:"name_comparison"`
	TrademarkComparison PairSimilarity `json:"trademark_comparison"`
}

// ReportMatch is one kept candidate in a comparison report.
type ReportMatch struct {
	ExistingTrademark Record         `json:"existing_trademark"`
	SimilarityScore   float64        `json:"similarity_score"`
	SimilarityLevel   string         `json:"similarity_level"`
	SimilarityType    string         `json:"similarity_type"`
	FallbackUsed      bool           `json:"fallback_used"`
	ComparisonNote    string         `json:"comparison_note"`
	DetailedScores    DetailedScores `json:"detailed_scores"`
}

// ComparisonReport is the result of comparing one record against the corpus.
type ComparisonReport struct {
	NewTrademark  NewTrademarkSummary `json:"new_trademark"`
	TotalExisting int                 `json:"total_existing_trademarks"`
	SimilarFound  int                 `json:"similar_trademarks_found"`
	Threshold     float64             `json:"similarity_threshold"`
	Matches       []ReportMatch       `json:"matches"`
}

// LedgerStats summarizes the stored corpus.
type LedgerStats struct {
	TotalRecords     int            `json:"total_records"`
	UniqueApplicants int            `json:"unique_applicants"`
	ByClass          map[string]int `json:"by_class"`
	ByStatus         map[string]int `json:"by_status"`
}

// ScoreResult is the response of the bare name-pair endpoint.
type ScoreResult struct {
	Name1      string         `json:"name1"`
	Name2      string         `json:"name2"`
	Similarity PairSimilarity `json:"similarity"`
	Level      string         `json:"level"`
}

// compareRequest matches the compare endpoint body.
type compareRequest struct {
	Trademark           Record   `json:"trademark"`
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty"`
}

// Compare scores rec against the stored corpus.  threshold may be nil to use
// the server default.
func (c *Client) Compare(ctx context.Context, rec Record, threshold *float64) (*ComparisonReport, error) {
	var report ComparisonReport
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/compare/trademark",
		compareRequest{Trademark: rec, SimilarityThreshold: threshold}, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ScoreNames scores two bare names against each other.
func (c *Client) ScoreNames(ctx context.Context, name1, name2 string) (*ScoreResult, error) {
	var result ScoreResult
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/compare/names",
		map[string]string{"name1": name1, "name2": name2}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AddTrademark appends one ledger-shaped record to the corpus.
func (c *Client) AddTrademark(ctx context.Context, rec Record) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/ledger/trademarks", rec, nil)
}

// Stats returns corpus statistics.
func (c *Client) Stats(ctx context.Context) (*LedgerStats, error) {
	var stats LedgerStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/ledger/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health checks the server's liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/healthz", nil, nil)
}
