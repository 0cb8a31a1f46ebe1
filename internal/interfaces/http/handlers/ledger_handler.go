package handlers

import (
	"net/http"

	"github.com/marksentry/marksentry/internal/application/comparison"
	"github.com/marksentry/marksentry/internal/domain/trademark"
	"github.com/marksentry/marksentry/internal/infrastructure/ledger"
	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

// LedgerHandler serves the corpus management endpoints.
type LedgerHandler struct {
	store     *ledger.Store
	svc       *comparison.Service
	maxUpload int64
}

// NewLedgerHandler constructs a LedgerHandler.
func NewLedgerHandler(store *ledger.Store, svc *comparison.Service, maxUpload int64) *LedgerHandler {
	return &LedgerHandler{store: store, svc: svc, maxUpload: maxUpload}
}

// Upload replaces the entire ledger with an uploaded CSV file.
func (h *LedgerHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, appErrors.Wrap(err, appErrors.ErrCodeBadRequest,
			"request must carry a multipart \"file\" field"))
		return
	}
	defer file.Close()

	count, err := h.store.Replace(file)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":       "CSV uploaded successfully",
		"filename":      header.Filename,
		"total_records": count,
	})
}

// Stats returns corpus statistics.
func (h *LedgerHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Stats())
}

// AddTrademark appends one ledger-shaped record to the corpus.
func (h *LedgerHandler) AddTrademark(w http.ResponseWriter, r *http.Request) {
	var rec trademark.Record
	if err := decodeJSON(w, r, &rec, h.maxUpload); err != nil {
		writeAppError(w, err)
		return
	}
	if err := h.svc.AddRecord(rec); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":       "trademark added",
		"total_records": h.store.Count(),
	})
}
