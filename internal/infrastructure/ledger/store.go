// Package ledger persists the registered trademark corpus as a flat CSV file
// and serves it to the comparison layer as an in-memory snapshot.  The file is
// the single source of truth; the store reloads it on demand and, optionally,
// whenever the file changes on disk.
package ledger

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/marksentry/marksentry/internal/domain/trademark"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

// Columns of the canonical ledger schema, in file order.
var canonicalColumns = []string{
	trademark.LedgerKeyApplicant,
	trademark.LedgerKeyApplicationNo,
	trademark.LedgerKeyTrademark,
	trademark.LedgerKeyLogo,
	trademark.LedgerKeyClass,
	trademark.LedgerKeyStatus,
	trademark.LedgerKeyValidity,
}

// Store holds the CSV-backed trademark corpus.  All methods are safe for
// concurrent use.
type Store struct {
	path string
	log  logging.Logger

	mu      sync.RWMutex
	columns []string
	records []trademark.Record

	onReload func(count int)
}

// Option configures a Store.
type Option func(*Store)

// WithReloadHook registers fn to be called with the record count after every
// successful load, append, replace, or watch-triggered reload.  The hook runs
// with the store's lock released and may call back into the store.
func WithReloadHook(fn func(count int)) Option {
	return func(s *Store) { s.onReload = fn }
}

// NewStore creates a Store over the CSV file at path.  The file is not read
// until Load is called.  A nil logger falls back to the no-op logger.
func NewStore(path string, log logging.Logger, opts ...Option) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	s := &Store{
		path:    path,
		log:     log.Named("ledger"),
		columns: append([]string(nil), canonicalColumns...),
		records: make([]trademark.Record, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file into memory, replacing any prior snapshot.  A
// missing file is not an error: the store starts empty and the file is created
// on first Append.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.mu.Lock()
			s.columns = append([]string(nil), canonicalColumns...)
			s.records = s.records[:0]
			s.mu.Unlock()
			s.log.Info("ledger file absent, starting empty", logging.String("path", s.path))
			s.notifyReload(0)
			return nil
		}
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerReadFailed, "open ledger file")
	}
	defer f.Close()

	columns, records, err := parseCSV(f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.columns = columns
	s.records = records
	s.mu.Unlock()

	s.log.Info("ledger loaded",
		logging.String("path", s.path),
		logging.Int("records", len(records)))
	s.notifyReload(len(records))
	return nil
}

// Snapshot returns a copy of the in-memory corpus.  Callers may hold the
// returned slice indefinitely; the records are deep-copied.
func (s *Store) Snapshot() []trademark.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]trademark.Record, len(s.records))
	for i, r := range s.records {
		cp := make(trademark.Record, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}

// Count returns the number of records currently loaded.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Columns returns the column names of the loaded file, in file order.
func (s *Store) Columns() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.columns...)
}

// Append adds one record to the backing file and the in-memory snapshot.  The
// record is projected onto the current column set; unknown keys are dropped.
// When the file does not exist yet it is created with the canonical header.
func (s *Store) Append(rec trademark.Record) error {
	count, err := s.appendRecord(rec)
	if err != nil {
		return err
	}
	s.notifyReload(count)
	return nil
}

// appendRecord does the locked file and snapshot update for Append and
// returns the new record count.
func (s *Store) appendRecord(rec trademark.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		writeHeader = true
	} else if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "stat ledger file")
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "open ledger file for append")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(s.columns); err != nil {
			return 0, appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "write ledger header")
		}
	}

	row := make([]string, len(s.columns))
	stored := make(trademark.Record, len(s.columns))
	for i, col := range s.columns {
		row[i] = rec[col]
		stored[col] = rec[col]
	}
	if err := w.Write(row); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "write ledger row")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "flush ledger row")
	}

	s.records = append(s.records, stored)
	s.log.Info("record appended",
		logging.String("applicant", stored[trademark.LedgerKeyApplicant]),
		logging.Int("records", len(s.records)))
	return len(s.records), nil
}

// Replace atomically overwrites the backing file with the CSV read from r and
// reloads the snapshot.  The upload must parse as CSV with a header row that
// includes the Client / Applicant column; other canonical columns are
// recommended but not required.  Returns the new record count.
func (s *Store) Replace(r io.Reader) (int, error) {
	columns, records, err := parseCSV(r)
	if err != nil {
		return 0, err
	}
	if !contains(columns, trademark.LedgerKeyApplicant) {
		return 0, appErrors.New(appErrors.ErrCodeLedgerMalformedCSV,
			"uploaded CSV is missing the \""+trademark.LedgerKeyApplicant+"\" column")
	}

	if err := s.replaceAll(columns, records); err != nil {
		return 0, err
	}
	s.notifyReload(len(records))
	return len(records), nil
}

// replaceAll does the locked file rewrite and snapshot swap for Replace.
func (s *Store) replaceAll(columns []string, records []trademark.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeAll(columns, records); err != nil {
		return err
	}
	s.columns = columns
	s.records = records

	s.log.Info("ledger replaced",
		logging.String("path", s.path),
		logging.Int("records", len(records)))
	return nil
}

// writeAll writes the full corpus to a temp file in the target directory and
// renames it over the backing file.  Callers hold s.mu.
func (s *Store) writeAll(columns []string, records []trademark.Record) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.csv")
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "create temp ledger file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "write ledger header")
	}
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "write ledger row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "flush ledger file")
	}
	if err := tmp.Close(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "close temp ledger file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerWriteFailed, "replace ledger file")
	}
	return nil
}

// notifyReload fires the reload hook.  It is always called with s.mu
// released, so hooks may call back into the store.
func (s *Store) notifyReload(count int) {
	if s.onReload != nil {
		s.onReload(count)
	}
}

// parseCSV reads a header row and the records below it.  Rows are padded or
// truncated to the header width by the csv package's FieldsPerRecord handling;
// ragged rows are a malformed-CSV error.
func parseCSV(r io.Reader) ([]string, []trademark.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, appErrors.New(appErrors.ErrCodeLedgerMalformedCSV, "CSV has no header row")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrCodeLedgerMalformedCSV, "read CSV header")
	}

	records := make([]trademark.Record, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrCodeLedgerMalformedCSV, "read CSV row")
		}
		rec := make(trademark.Record, len(header))
		for i, col := range header {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return header, records, nil
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

// Stats summarizes the loaded corpus.
type Stats struct {
	TotalRecords     int            `json:"total_records"`
	UniqueApplicants int            `json:"unique_applicants"`
	ByClass          map[string]int `json:"by_class"`
	ByStatus         map[string]int `json:"by_status"`
	Columns          []string       `json:"columns"`
}

// Stats computes corpus statistics from the in-memory snapshot.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	applicants := make(map[string]struct{})
	byClass := make(map[string]int)
	byStatus := make(map[string]int)
	for _, rec := range s.records {
		if v := rec[trademark.LedgerKeyApplicant]; v != "" {
			applicants[v] = struct{}{}
		}
		if v := rec[trademark.LedgerKeyClass]; v != "" {
			byClass[v]++
		}
		if v := rec[trademark.LedgerKeyStatus]; v != "" {
			byStatus[v]++
		}
	}

	return Stats{
		TotalRecords:     len(s.records),
		UniqueApplicants: len(applicants),
		ByClass:          byClass,
		ByStatus:         byStatus,
		Columns:          append([]string(nil), s.columns...),
	}
}

// ApplicantNames returns the distinct applicant names in the corpus, sorted.
func (s *Store) ApplicantNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(map[string]struct{})
	for _, rec := range s.records {
		if v := rec[trademark.LedgerKeyApplicant]; v != "" {
			set[v] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Watch reloads the store whenever the backing file changes on disk.  The
// parent directory is watched so that atomic rename-into-place is observed.
// Watch blocks until stop is closed or the watcher fails.
func (s *Store) Watch(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerReadFailed, "create ledger watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeLedgerReadFailed, "watch ledger directory")
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Load(); err != nil {
				s.log.Warn("ledger reload failed", logging.Err(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("ledger watcher error", logging.Err(err))
		}
	}
}
