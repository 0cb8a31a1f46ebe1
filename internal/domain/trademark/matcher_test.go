package trademark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerRecord(applicant, mark, appNo string) Record {
	return Record{
		LedgerKeyApplicant:     applicant,
		LedgerKeyTrademark:     mark,
		LedgerKeyApplicationNo: appNo,
	}
}

func TestFindMatches_EmptyCorpus(t *testing.T) {
	t.Parallel()

	matches := FindMatches(Record{"name": "Apple"}, nil, DefaultThreshold)
	require.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestFindMatches_ThresholdFiltersAndRanks(t *testing.T) {
	t.Parallel()

	newRec := Record{"name": "Apple", "text_in_logo": "Apple"}
	corpus := []Record{
		ledgerRecord("Zygote Industries", "Zygote", "A1"), // far below threshold
		ledgerRecord("Applet", "Applet", "A2"),            // close
		ledgerRecord("Apple", "Apple", "A3"),              // exact
	}

	matches := FindMatches(newRec, corpus, DefaultThreshold)
	require.Len(t, matches, 2)
	assert.Equal(t, "A3", matches[0].Record[LedgerKeyApplicationNo])
	assert.Equal(t, "A2", matches[1].Record[LedgerKeyApplicationNo])
	assert.Greater(t, matches[0].MaxScore, matches[1].MaxScore)
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.MaxScore, DefaultThreshold)
	}
}

func TestFindMatches_ThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	newRec := Record{"name": "Apple", "text_in_logo": "Apple"}
	corpus := []Record{ledgerRecord("Apple", "Apple", "A1")}

	// An exact match scores exactly 100 and must be kept at threshold 100.
	matches := FindMatches(newRec, corpus, 100.0)
	require.Len(t, matches, 1)
	assert.Equal(t, 100.0, matches[0].MaxScore)
}

func TestFindMatches_StableOrderOnTies(t *testing.T) {
	t.Parallel()

	newRec := Record{"name": "Apple", "text_in_logo": "Apple"}
	corpus := []Record{
		ledgerRecord("Apple", "Apple", "FIRST"),
		ledgerRecord("Apple", "Apple", "SECOND"),
	}

	matches := FindMatches(newRec, corpus, DefaultThreshold)
	require.Len(t, matches, 2)
	assert.Equal(t, "FIRST", matches[0].Record[LedgerKeyApplicationNo])
	assert.Equal(t, "SECOND", matches[1].Record[LedgerKeyApplicationNo])
}

func TestFindMatches_SimilarityType(t *testing.T) {
	t.Parallel()

	t.Run("name dominates", func(t *testing.T) {
		t.Parallel()
		newRec := Record{"name": "Apple Technologies", "text_in_logo": "Orchid"}
		corpus := []Record{ledgerRecord("Apple Technologies", "Zebra", "A1")}
		matches := FindMatches(newRec, corpus, DefaultThreshold)
		require.Len(t, matches, 1)
		assert.Equal(t, SimilarityTypeApplicant, matches[0].SimilarityType)
	})

	t.Run("trademark dominates", func(t *testing.T) {
		t.Parallel()
		newRec := Record{"name": "Orchid Holdings", "text_in_logo": "Apple"}
		corpus := []Record{ledgerRecord("Zebra Ltd", "Apple", "A1")}
		matches := FindMatches(newRec, corpus, DefaultThreshold)
		require.Len(t, matches, 1)
		assert.Equal(t, SimilarityTypeTrademark, matches[0].SimilarityType)
	})

	t.Run("tie resolves to trademark", func(t *testing.T) {
		t.Parallel()
		newRec := Record{"name": "Apple", "text_in_logo": "Apple"}
		corpus := []Record{ledgerRecord("Apple", "Apple", "A1")}
		matches := FindMatches(newRec, corpus, DefaultThreshold)
		require.Len(t, matches, 1)
		assert.Equal(t, matches[0].NameSimilarity.Overall, matches[0].LogoSimilarity.Overall)
		assert.Equal(t, SimilarityTypeTrademark, matches[0].SimilarityType)
	})
}

func TestFindMatches_FallbackPolicy(t *testing.T) {
	t.Parallel()

	newRec := Record{"text_in_logo": "Acme Corp Logo", "name": "Acme Corp Logo"}
	corpus := []Record{{
		LedgerKeyApplicant: "Acme Corp",
		LedgerKeyTrademark: "",
	}}

	matches := FindMatches(newRec, corpus, DefaultThreshold)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].FallbackUsed)
	assert.Equal(t, SimilarityTypeApplicantName, matches[0].SimilarityType)
	// Both comparisons ran against the applicant name.
	assert.Equal(t, matches[0].NameSimilarity.Overall, matches[0].LogoSimilarity.Overall)
}

func TestFindMatches_DoesNotMutateRecords(t *testing.T) {
	t.Parallel()

	stored := ledgerRecord("Apple", "Apple", "A1")
	newRec := Record{"name": "Apple"}
	before := len(stored)

	FindMatches(newRec, []Record{stored}, DefaultThreshold)
	assert.Len(t, stored, before)
	assert.Len(t, newRec, 1)
}
