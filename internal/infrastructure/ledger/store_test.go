package ledger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marksentry/marksentry/internal/domain/trademark"
	"github.com/marksentry/marksentry/internal/infrastructure/ledger"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

const sampleCSV = `Client / Applicant,Application No.,Trademark,Logo,Class,Status,Validity
Apple Inc.,TM-1001,Apple,apple.png,9,Registered,2030-01-01
Acme Corp,TM-1002,,acme.png,35,Pending,
Apple Inc.,TM-1003,iPhone,iphone.png,9,Registered,2031-06-30
`

func writeLedgerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trademark_database.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStore_LoadMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.csv")
	s := ledger.NewStore(path, nil)
	require.NoError(t, s.Load())
	assert.Zero(t, s.Count())
	assert.Empty(t, s.Snapshot())
}

func TestStore_LoadAndSnapshot(t *testing.T) {
	t.Parallel()

	s := ledger.NewStore(writeLedgerFile(t, sampleCSV), nil)
	require.NoError(t, s.Load())
	require.Equal(t, 3, s.Count())

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "Apple Inc.", snap[0][trademark.LedgerKeyApplicant])
	assert.Equal(t, "TM-1002", snap[1][trademark.LedgerKeyApplicationNo])
	assert.Equal(t, "", snap[1][trademark.LedgerKeyTrademark])

	// Snapshots are copies; mutating one must not leak into the store.
	snap[0][trademark.LedgerKeyApplicant] = "Mutated"
	assert.Equal(t, "Apple Inc.", s.Snapshot()[0][trademark.LedgerKeyApplicant])
}

func TestStore_LoadMalformedCSV(t *testing.T) {
	t.Parallel()

	ragged := "Client / Applicant,Trademark\nApple Inc.,Apple,extra\n"
	s := ledger.NewStore(writeLedgerFile(t, ragged), nil)
	err := s.Load()
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.ErrCodeLedgerMalformedCSV))
}

func TestStore_AppendCreatesFileWithHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trademark_database.csv")
	s := ledger.NewStore(path, nil)
	require.NoError(t, s.Load())

	require.NoError(t, s.Append(trademark.Record{
		trademark.LedgerKeyApplicant: "Acme Corp",
		trademark.LedgerKeyTrademark: "Acme",
		trademark.LedgerKeyClass:     "35",
	}))
	assert.Equal(t, 1, s.Count())

	// A fresh store over the same file sees the appended record.
	s2 := ledger.NewStore(path, nil)
	require.NoError(t, s2.Load())
	require.Equal(t, 1, s2.Count())
	rec := s2.Snapshot()[0]
	assert.Equal(t, "Acme Corp", rec[trademark.LedgerKeyApplicant])
	assert.Equal(t, "Acme", rec[trademark.LedgerKeyTrademark])
	assert.Equal(t, "", rec[trademark.LedgerKeyValidity])
}

func TestStore_AppendToExistingFile(t *testing.T) {
	t.Parallel()

	s := ledger.NewStore(writeLedgerFile(t, sampleCSV), nil)
	require.NoError(t, s.Load())
	require.NoError(t, s.Append(trademark.Record{
		trademark.LedgerKeyApplicant: "Orchid Holdings",
		trademark.LedgerKeyTrademark: "Orchid",
	}))
	assert.Equal(t, 4, s.Count())

	s2 := ledger.NewStore(s.Path(), nil)
	require.NoError(t, s2.Load())
	assert.Equal(t, 4, s2.Count())
}

func TestStore_Replace(t *testing.T) {
	t.Parallel()

	s := ledger.NewStore(writeLedgerFile(t, sampleCSV), nil)
	require.NoError(t, s.Load())

	upload := "Client / Applicant,Trademark\nZen Labs,Zen\n"
	n, err := s.Replace(strings.NewReader(upload))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, []string{"Client / Applicant", "Trademark"}, s.Columns())

	// The file itself was rewritten.
	s2 := ledger.NewStore(s.Path(), nil)
	require.NoError(t, s2.Load())
	assert.Equal(t, "Zen Labs", s2.Snapshot()[0][trademark.LedgerKeyApplicant])
}

func TestStore_ReplaceRejectsMissingApplicantColumn(t *testing.T) {
	t.Parallel()

	s := ledger.NewStore(writeLedgerFile(t, sampleCSV), nil)
	require.NoError(t, s.Load())

	_, err := s.Replace(strings.NewReader("Trademark\nApple\n"))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.ErrCodeLedgerMalformedCSV))
	// The prior corpus survives a rejected upload.
	assert.Equal(t, 3, s.Count())
}

func TestStore_Stats(t *testing.T) {
	t.Parallel()

	s := ledger.NewStore(writeLedgerFile(t, sampleCSV), nil)
	require.NoError(t, s.Load())

	st := s.Stats()
	assert.Equal(t, 3, st.TotalRecords)
	assert.Equal(t, 2, st.UniqueApplicants)
	assert.Equal(t, map[string]int{"9": 2, "35": 1}, st.ByClass)
	assert.Equal(t, map[string]int{"Registered": 2, "Pending": 1}, st.ByStatus)
}

func TestStore_ApplicantNames(t *testing.T) {
	t.Parallel()

	s := ledger.NewStore(writeLedgerFile(t, sampleCSV), nil)
	require.NoError(t, s.Load())
	assert.Equal(t, []string{"Acme Corp", "Apple Inc."}, s.ApplicantNames())
}

func TestStore_ReloadHook(t *testing.T) {
	t.Parallel()

	var counts []int
	s := ledger.NewStore(writeLedgerFile(t, sampleCSV), nil,
		ledger.WithReloadHook(func(n int) { counts = append(counts, n) }))
	require.NoError(t, s.Load())
	require.NoError(t, s.Append(trademark.Record{trademark.LedgerKeyApplicant: "Zen Labs"}))
	assert.Equal(t, []int{3, 4}, counts)
}

func TestStore_ReloadHookMayCallBackIntoStore(t *testing.T) {
	t.Parallel()

	// The hook runs with the store's lock released; reading back from the
	// store inside it must not deadlock and must see the updated snapshot.
	var s *ledger.Store
	var seen []int
	s = ledger.NewStore(writeLedgerFile(t, sampleCSV), nil,
		ledger.WithReloadHook(func(int) { seen = append(seen, s.Count()) }))

	require.NoError(t, s.Load())
	require.NoError(t, s.Append(trademark.Record{trademark.LedgerKeyApplicant: "Zen Labs"}))
	_, err := s.Replace(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 3}, seen)
}
