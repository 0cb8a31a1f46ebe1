// Package comparison orchestrates the similarity engine over the ledger
// corpus: it resolves thresholds, takes corpus snapshots, runs the engine,
// and reports metrics.  All scoring semantics live in
// internal/domain/trademark; this layer adds validation, logging, and
// observability.
package comparison

import (
	"time"

	"github.com/marksentry/marksentry/internal/domain/trademark"
	"github.com/marksentry/marksentry/internal/infrastructure/ledger"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/prometheus"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

// Service runs trademark comparisons against the ledger corpus.
type Service struct {
	store            *ledger.Store
	log              logging.Logger
	metrics          *prometheus.Metrics
	defaultThreshold float64
}

// NewService builds a comparison Service.  metrics may be nil; a nil logger
// falls back to the no-op logger.  A defaultThreshold of 0 selects the engine
// default.
func NewService(store *ledger.Store, log logging.Logger, metrics *prometheus.Metrics, defaultThreshold float64) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if defaultThreshold == 0 {
		defaultThreshold = trademark.DefaultThreshold
	}
	return &Service{
		store:            store,
		log:              log.Named("comparison"),
		metrics:          metrics,
		defaultThreshold: defaultThreshold,
	}
}

// DefaultThreshold returns the threshold used when a request does not carry
// one.
func (s *Service) DefaultThreshold() float64 {
	return s.defaultThreshold
}

// resolveThreshold applies the service default and validates the range.  A
// nil threshold means "use the default".
func (s *Service) resolveThreshold(threshold *float64) (float64, error) {
	if threshold == nil {
		return s.defaultThreshold, nil
	}
	t := *threshold
	if t < 0 || t > 100 {
		return 0, appErrors.Newf(appErrors.ErrCodeMarkThresholdInvalid,
			"threshold %.2f out of range [0, 100]", t)
	}
	return t, nil
}

// Compare scores newRec against the full ledger corpus and returns the
// structured report.  threshold may be nil to use the service default.
func (s *Service) Compare(newRec trademark.Record, threshold *float64) (*trademark.ComparisonReport, error) {
	if len(newRec) == 0 {
		return nil, appErrors.New(appErrors.ErrCodeMarkRecordMissing, "comparison request carries no record")
	}
	t, err := s.resolveThreshold(threshold)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	corpus := s.store.Snapshot()
	report := trademark.BuildReport(newRec, corpus, t)
	elapsed := time.Since(start)

	s.log.Info("comparison finished",
		logging.String("applicant", report.NewTrademark.Name),
		logging.Int("corpus_size", report.TotalExisting),
		logging.Int("matches", report.SimilarFound),
		logging.Float64("threshold", t),
		logging.Duration("elapsed", elapsed))

	if s.metrics != nil {
		s.metrics.ComparisonsTotal.Inc()
		s.metrics.ComparisonDuration.Observe(elapsed.Seconds())
		s.metrics.ComparisonMatches.Observe(float64(report.SimilarFound))
		s.metrics.CorpusSize.Set(float64(report.TotalExisting))
	}
	return report, nil
}

// CompareAll runs Compare for each record and returns the reports in input
// order.  The first validation error aborts the batch.
func (s *Service) CompareAll(newRecs []trademark.Record, threshold *float64) ([]*trademark.ComparisonReport, error) {
	reports := make([]*trademark.ComparisonReport, 0, len(newRecs))
	for _, rec := range newRecs {
		report, err := s.Compare(rec, threshold)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// ScorePair scores two bare names against each other, outside any corpus.
func (s *Service) ScorePair(a, b string) trademark.PairSimilarity {
	return trademark.ScorePair(a, b)
}

// AddRecord appends a ledger-shaped record to the corpus.
func (s *Service) AddRecord(rec trademark.Record) error {
	if len(rec) == 0 {
		return appErrors.New(appErrors.ErrCodeMarkRecordMissing, "record is empty")
	}
	return s.store.Append(rec)
}

// LedgerStats returns corpus statistics.
func (s *Service) LedgerStats() ledger.Stats {
	return s.store.Stats()
}
